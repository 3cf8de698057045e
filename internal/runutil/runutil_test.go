package runutil

import (
	"runtime"
	"testing"
)

func TestEffectiveWorkers(t *testing.T) {
	if got := EffectiveWorkers(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := EffectiveWorkers(0); got != runtime.NumCPU() {
		t.Fatalf("0 → want NumCPU=%d, got %d", runtime.NumCPU(), got)
	}
	if got := EffectiveWorkers(-4); got != runtime.NumCPU() {
		t.Fatalf("-4 → want NumCPU=%d, got %d", runtime.NumCPU(), got)
	}
}

func TestClampWorkers(t *testing.T) {
	cases := []struct{ workers, levels, want int }{
		{8, 3, 3}, {2, 5, 2}, {0, 5, 1}, {4, 0, 1},
	}
	for _, tc := range cases {
		if got := ClampWorkers(tc.workers, tc.levels); got != tc.want {
			t.Errorf("ClampWorkers(%d,%d) = %d, want %d", tc.workers, tc.levels, got, tc.want)
		}
	}
}
