// Package encode renders OpenDDL documents to their canonical text form.
//
// # Usage
//
//	doc := ir.NewDocument()
//	human := doc.AddStructure("Human")
//	human.AddStructure("Name").
//		AddPrimitive(ir.NewPrimitive(ir.StringType, `"Peter"`))
//
//	err := encode.Encode(doc, os.Stdout)
//
//	// Encode with options
//	err = encode.Encode(doc, w, encode.Rounding(3), encode.EncodeComments(false))
//
// # Layout
//
// Indentation is one tab per nesting level. A structure that is unnamed,
// has no properties, and holds exactly one simple primitive collapses to
// a single line ("Name {string {"Peter"}}"); everything else renders as
// a braced block. Primitive data with more than one element renders in
// its own block, one line per MaxPerLine elements (all on one line when
// unset), vectors wrapped in braces.
//
// Float and double data is rounded to DefaultRounding decimal places
// unless Rounding or FullPrecision say otherwise. Infinities and NaN
// always render as "0.0". Property values are formatted by their Go
// type and never rounded.
//
// Unsupported property value types, unknown data types, malformed
// vectors, and references to unnamed structures are fatal: Encode stops
// and returns an error wrapping ErrEncoding.
package encode
