// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strconv"

	"ringrot/internal/grid"
)

// WriteText prints one row per line, values separated by a single space.
func WriteText(w io.Writer, g grid.Grid) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, row := range g {
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
