package engine

import (
	"errors"
	"slices"
	"testing"

	"ringrot/internal/grid"
)

func TestCyclicShift(t *testing.T) {
	seq := []int{1, 2, 3, 6, 9, 8, 7, 4}
	got, err := CyclicShift(seq, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 3, 6, 9, 8, 7, 4, 1}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCyclicShiftIdentity(t *testing.T) {
	seq := []int{5, 6, 7, 8}
	for _, r := range []int{0, 4, 8, 400} {
		got, err := CyclicShift(seq, r)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, seq) {
			t.Errorf("r=%d: got %v, want unchanged %v", r, got, seq)
		}
	}
}

func TestCyclicShiftRoundTrip(t *testing.T) {
	seq := []string{"a", "b", "c", "d", "e"}
	L := len(seq)
	for r := 0; r < 3*L; r++ {
		once, err := CyclicShift(seq, r)
		if err != nil {
			t.Fatal(err)
		}
		back, err := CyclicShift(once, (L-r%L)%L)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(back, seq) {
			t.Fatalf("r=%d: round trip gave %v", r, back)
		}
	}
}

func TestCyclicShiftDoesNotAlias(t *testing.T) {
	seq := []int{1, 2, 3}
	got, _ := CyclicShift(seq, 0)
	got[0] = 99
	if seq[0] != 1 {
		t.Fatal("result aliases the input slice")
	}
}

func TestCyclicShiftInvalid(t *testing.T) {
	if _, err := CyclicShift([]int{}, 1); !errors.Is(err, grid.ErrInvalidInput) {
		t.Errorf("empty: err = %v", err)
	}
	if _, err := CyclicShift([]int{1}, -2); !errors.Is(err, grid.ErrInvalidInput) {
		t.Errorf("negative: err = %v", err)
	}
}
