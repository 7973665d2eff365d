// Package source opens raw dataset bytes for the parser.
//
// Files ending in .gz or .zst are decompressed transparently.
package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Opener opens a named dataset for reading.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

// Dir opens dataset files relative to Root. Absolute names are used as is.
type Dir struct {
	Root string
}

// Open implements Opener.
func (d Dir) Open(name string) (io.ReadCloser, error) {
	path := name
	if !filepath.IsAbs(path) && d.Root != "" {
		path = filepath.Join(d.Root, name)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}

	rc, err := Decompress(f, name)
	if err != nil {
		f.Close()
		return nil, err
	}
	return rc, nil
}

// Static serves datasets from memory, keyed by name. Values may hold
// compressed bytes when the name carries a compression extension.
type Static map[string][]byte

// Open implements Opener.
func (s Static) Open(name string) (io.ReadCloser, error) {
	data, ok := s[name]
	if !ok {
		return nil, errors.Newf("dataset %s not found", name)
	}
	return Decompress(io.NopCloser(bytes.NewReader(data)), name)
}

// Decompress wraps rc in a decompressor chosen by the extension of name.
// Closing the result closes rc.
func Decompress(rc io.ReadCloser, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		zr, err := gzip.NewReader(rc)
		if err != nil {
			return nil, errors.Wrapf(err, "gzip header of %s", name)
		}
		return &readCloser{Reader: zr, close: func() error {
			return errors.CombineErrors(zr.Close(), rc.Close())
		}}, nil

	case ".zst", ".zstd":
		zr, err := zstd.NewReader(rc)
		if err != nil {
			return nil, errors.Wrapf(err, "zstd stream of %s", name)
		}
		return &readCloser{Reader: zr, close: func() error {
			zr.Close()
			return rc.Close()
		}}, nil

	default:
		return rc, nil
	}
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}
