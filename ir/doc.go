// Package ir provides the in-memory representation of OpenDDL documents.
//
// # Overview
//
// An OpenDDL document is an ordered tree of structures. A structure has a
// mandatory identifier naming its semantic kind, an optional name (the
// target of reference values elsewhere in the tree), an ordered list of
// key-value properties, and an ordered list of children. A child is either
// a nested *Structure or a *Primitive, a leaf holding typed scalar or
// vector data.
//
// The tree is built programmatically and handed to the encode package for
// rendering. Nothing here reads the textual format back; producing the
// tree from text is the job of a parser, which this module does not
// provide.
//
// # Building Documents
//
//	doc := ir.NewDocument()
//	human := doc.AddStructure("Human")
//	human.AddStructure("Name").
//		AddPrimitive(ir.NewPrimitive(ir.StringType, `"Peter"`))
//	human.AddStructure("Age").
//		AddPrimitive(ir.NewPrimitive(ir.UnsignedInt16Type, 21))
//
// AddStructure returns the new child structure so nested content can be
// attached to it. AddPrimitive returns the owning structure, so several
// primitives chain onto the same parent. Optional attributes are attached
// with the With* chainers:
//
//	ir.NewVectorPrimitive(ir.FloatType, 3, verts...).
//		WithName("position").
//		WithMaxPerLine(8)
//
// # Ownership
//
// A structure exclusively owns its children and properties; the document
// transitively owns the whole tree. A reference-type primitive holds a
// plain *Structure handle used only to look up the target's name at
// encode time. It never governs the target's lifetime.
//
// # Preconditions
//
// Builders perform no validation. In particular, when VectorSize > 0
// every data element must be a vector of exactly VectorSize scalars;
// violations are caught when the document is encoded, not here.
//
// # Thread Safety
//
// Documents are not thread-safe. A document must not be mutated while it
// is being encoded; concurrent encoding of the same unchanging document
// is fine.
//
// # Related Packages
//
//   - github.com/oddl-format/go-oddl/encode - Encodes documents to text
package ir
