package encode

import (
	"bytes"

	"github.com/oddl-format/go-oddl/ir"
)

// MustString renders the document to a string, panicking on encoding
// errors. The result keeps the terminating newline of the last
// structure.
func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
