// internal/input/open.go
package input

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "" and "-" read stdin. gzip and zstd
// inputs are detected by magic number or by .gz/.zst suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return wrap(os.Stdin, io.NopCloser(os.Stdin), "")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := wrap(fh, fh, path)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func wrap(r io.Reader, c io.Closer, path string) (io.ReadCloser, error) {
	// Peek through a buffer so stdin (unseekable) works the same as files.
	var sig [4]byte
	n, err := io.ReadFull(r, sig[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	head := sig[:n]
	src := io.MultiReader(bytes.NewReader(head), r)

	switch {
	case bytes.HasPrefix(head, gzipMagic) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, c}}, nil
	case bytes.HasPrefix(head, zstdMagic) || strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		zr := dec.IOReadCloser()
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr, c}}, nil
	}
	return &multiReadCloser{Reader: src, closers: []io.Closer{c}}, nil
}

// trimCompression strips a trailing .gz/.zst so format detection sees the
// underlying extension.
func trimCompression(path string) string {
	for _, ext := range []string{".gz", ".zst"} {
		if strings.HasSuffix(path, ext) {
			return strings.TrimSuffix(path, ext)
		}
	}
	return path
}
