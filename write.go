// Package oddl writes OpenDDL documents built with the ir package.
//
// The document model lives in ir and the text rendering in encode; this
// package is the file-level surface tying them together.
package oddl

import (
	"fmt"
	"io"
	"os"

	"github.com/oddl-format/go-oddl/encode"
	"github.com/oddl-format/go-oddl/format"
	"github.com/oddl-format/go-oddl/ir"
)

// String renders the document as text, panicking on encoding errors.
func String(doc *ir.Document, opts ...encode.EncodeOption) string {
	return encode.MustString(doc, opts...)
}

// Write renders the document as text to w.
func Write(doc *ir.Document, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(doc, w, opts...)
}

// WriteFile creates path and renders the document into it as text. The
// file is closed on every path, including encoding errors.
func WriteFile(doc *ir.Document, path string, opts ...encode.EncodeOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode.Encode(doc, f, opts...)
}

// WriteFileFormat is WriteFile with an explicit output format. Only
// format.TextFormat has a writer; asking for the binary format is an
// error until a binary writer exists.
func WriteFileFormat(doc *ir.Document, path string, f format.Format, opts ...encode.EncodeOption) error {
	switch f {
	case format.TextFormat:
		return WriteFile(doc, path, opts...)
	case format.BinaryFormat:
		return fmt.Errorf("%w: no binary writer", format.ErrBadFormat)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
}
