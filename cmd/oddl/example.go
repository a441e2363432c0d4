package main

import (
	"fmt"

	oddl "github.com/oddl-format/go-oddl"
	"github.com/oddl-format/go-oddl/debug"
	"github.com/oddl-format/go-oddl/format"
	"github.com/oddl-format/go-oddl/ir"

	"github.com/scott-cotton/cli"
)

func example(cfg *ExampleConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Example.Parse(cc, args); err != nil {
		return err
	}
	if cfg.OutFormat != nil && !cfg.OutFormat.IsText() {
		return fmt.Errorf("%w: no binary writer", format.ErrBadFormat)
	}
	doc := buildExample()
	if debug.Tree() {
		debug.LogAny(doc)
	}
	return oddl.Write(doc, cc.Out, cfg.encOpts(cc.Out)...)
}

// buildExample assembles a small triangle scene exercising most of the
// builder surface: properties, names, references, vectors, wrapping,
// and comments.
func buildExample() *ir.Document {
	doc := ir.NewDocument()

	doc.AddStructure("Metric").
		SetProperty("key", "distance").
		AddPrimitive(ir.NewPrimitive(ir.FloatType, 1.0))

	node := doc.AddStructure("GeometryNode").
		WithName("node1").
		WithComment("a single triangle")
	node.AddStructure("Name").
		AddPrimitive(ir.NewPrimitive(ir.StringType, `"Triangle"`))

	geom := doc.AddStructure("GeometryObject").WithName("geometry1")
	node.AddStructure("ObjectRef").
		AddPrimitive(ir.NewPrimitive(ir.RefType, geom))

	mesh := geom.AddStructure("Mesh")
	mesh.SetProperty("primitive", "triangles")
	mesh.AddStructure("VertexArray").
		SetProperty("attrib", "position").
		AddPrimitive(ir.NewVectorPrimitive(ir.FloatType, 3,
			ir.Vec(-0.5, -0.5, 0.0),
			ir.Vec(0.5, -0.5, 0.0),
			ir.Vec(0.0, 0.5, 0.0),
		).WithMaxPerLine(2))
	mesh.AddStructure("IndexArray").
		AddPrimitive(ir.NewPrimitive(ir.UnsignedInt32Type, 0, 1, 2).
			WithComment("one triangle"))

	return doc
}
