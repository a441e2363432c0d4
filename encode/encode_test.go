package encode

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/oddl-format/go-oddl/ir"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// expectText fails with a readable diff when the rendered document does
// not match want byte for byte.
func expectText(t *testing.T, doc *ir.Document, want string, opts ...EncodeOption) {
	t.Helper()
	got := MustString(doc, opts...)
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Fatalf("unexpected output (want->got):\n%s\ngot:\n%q", dmp.DiffPrettyText(diffs), got)
}

func TestEncodeEmptyDocument(t *testing.T) {
	expectText(t, ir.NewDocument(), "")
}

func TestEncodeHumanExample(t *testing.T) {
	doc := ir.NewDocument()
	human := doc.AddStructure("Human")
	human.AddStructure("Name").
		AddPrimitive(ir.NewPrimitive(ir.StringType, `"Peter"`))
	human.AddStructure("Age").
		AddPrimitive(ir.NewPrimitive(ir.UnsignedInt16Type, 21))

	expectText(t, doc, `Human
{
	Name {string {"Peter"}}
	Age {unsigned_int16 {21}}
}
`)
}

func TestSimpleCollapseSwitchesToBlock(t *testing.T) {
	base := func() (*ir.Document, *ir.Structure) {
		doc := ir.NewDocument()
		s := doc.AddStructure("Age")
		s.AddPrimitive(ir.NewPrimitive(ir.UnsignedInt16Type, 21))
		return doc, s
	}

	doc, _ := base()
	expectText(t, doc, "Age {unsigned_int16 {21}}\n")

	doc, s := base()
	s.WithName("age1")
	expectText(t, doc, "Age $age1\n{\n\tunsigned_int16 {21}\n}\n")

	doc, s = base()
	s.SetProperty("unit", "years")
	expectText(t, doc, "Age (unit = \"years\")\n{\n\tunsigned_int16 {21}\n}\n")

	doc, s = base()
	s.AddPrimitive(ir.NewPrimitive(ir.UnsignedInt16Type, 22))
	expectText(t, doc, "Age\n{\n\tunsigned_int16 {21}\n\tunsigned_int16 {22}\n}\n")
}

func TestFloatRounding(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Value").
		AddPrimitive(ir.NewPrimitive(ir.FloatType, 1.0/3.0))

	expectText(t, doc, "Value {float {0.333333}}\n")
	expectText(t, doc, "Value {float {0.333333}}\n", Rounding(6))
	expectText(t, doc, "Value {float {0.33}}\n", Rounding(2))
	expectText(t, doc, "Value {float {0.3333333333333333}}\n", FullPrecision())
}

func TestFloatWholeNumberKeepsDecimal(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Value").
		AddPrimitive(ir.NewPrimitive(ir.DoubleType, 2.0))
	expectText(t, doc, "Value {double {2.0}}\n")
	expectText(t, doc, "Value {double {2.0}}\n", FullPrecision())
}

func TestNonFiniteFloats(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		doc := ir.NewDocument()
		doc.AddStructure("Value").
			AddPrimitive(ir.NewPrimitive(ir.FloatType, v))
		expectText(t, doc, "Value {float {0.0}}\n")
		expectText(t, doc, "Value {float {0.0}}\n", Rounding(2))
		expectText(t, doc, "Value {float {0.0}}\n", FullPrecision())
	}
}

func TestLargeFiniteFloatNotDroppedByRounding(t *testing.T) {
	// scaling 1e308 by the rounding factor overflows float64; the
	// value must keep its finite text
	doc := ir.NewDocument()
	doc.AddStructure("Value").
		AddPrimitive(ir.NewPrimitive(ir.DoubleType, 1e308))

	want := "Value {double {" + floatText(1e308, 64) + "}}\n"
	expectText(t, doc, want)
	expectText(t, doc, want, Rounding(2))
	expectText(t, doc, want, FullPrecision())
}

func TestNegativeRoundingClampedToZero(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Value").
		AddPrimitive(ir.NewPrimitive(ir.FloatType, 0.75))
	expectText(t, doc, "Value {float {1.0}}\n", Rounding(-3))
	expectText(t, doc, "Value {float {1.0}}\n", Rounding(0))
}

func TestMaxPerLineGrouping(t *testing.T) {
	values := make([]any, 99)
	for i := range values {
		values[i] = i
	}
	doc := ir.NewDocument()
	doc.AddStructure("Data").
		AddPrimitive(ir.NewPrimitive(ir.Int32Type, values...).WithMaxPerLine(10))

	var b strings.Builder
	b.WriteString("Data\n{\n\tint32\n\t{\n")
	for start := 0; start < 99; start += 10 {
		end := min(start+10, 99)
		parts := make([]string, 0, 10)
		for i := start; i < end; i++ {
			parts = append(parts, fmt.Sprintf("%d", i))
		}
		b.WriteString("\t\t" + strings.Join(parts, ", "))
		if end < 99 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("\t}\n}\n")
	expectText(t, doc, b.String())

	// 9 full lines of 10 plus a line of 9
	got := MustString(doc)
	inner := strings.Count(got, "\t\t")
	if inner != 10 {
		t.Fatalf("expected 10 value lines, got %d", inner)
	}
}

func TestVectorsOnOneLine(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("V").
		AddPrimitive(ir.NewVectorPrimitive(ir.Int32Type, 2, ir.Vec(1, 2), ir.Vec(3, 4)))

	expectText(t, doc, "V\n{\n\tint32[2]\n\t{\n\t\t{1, 2}, {3, 4}\n\t}\n}\n")
}

func TestVectorsWrapPerLine(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("V").
		AddPrimitive(ir.NewVectorPrimitive(ir.Int32Type, 2,
			ir.Vec(1, 2), ir.Vec(3, 4), ir.Vec(5, 6)).WithMaxPerLine(2))

	expectText(t, doc, "V\n{\n\tint32[2]\n\t{\n\t\t{1, 2}, {3, 4},\n\t\t{5, 6}\n\t}\n}\n")
}

func TestTypedSliceVectors(t *testing.T) {
	idx := ir.NewPrimitive(ir.UnsignedInt32Type, []uint32{0, 1, 2})
	idx.VectorSize = 3
	pos := ir.NewPrimitive(ir.FloatType, []float32{1, 2, 3})
	pos.VectorSize = 3

	doc := ir.NewDocument()
	doc.AddStructure("Index").AddPrimitive(idx)
	doc.AddStructure("Position").AddPrimitive(pos)

	expectText(t, doc,
		"Index {unsigned_int32[3] { {0, 1, 2} }}\n"+
			"Position {float[3] { {1.0, 2.0, 3.0} }}\n")
}

func TestSingleVector(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Vertex").
		AddPrimitive(ir.NewVectorPrimitive(ir.FloatType, 3, ir.Vec(1.0, 2.0, 3.0)))

	expectText(t, doc, "Vertex {float[3] { {1.0, 2.0, 3.0} }}\n")
}

func TestEmptyData(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("A").
		AddPrimitive(ir.NewPrimitive(ir.Int32Type)).
		AddPrimitive(ir.NewPrimitive(ir.Int32Type, 5))

	expectText(t, doc, "A\n{\n\tint32 { }\n\tint32 {5}\n}\n")
}

func TestNamedPrimitive(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Params").
		AddPrimitive(ir.NewPrimitive(ir.FloatType, 2.5).WithName("lacunarity")).
		AddPrimitive(ir.NewPrimitive(ir.FloatType, 0.5).WithName("gain"))

	// the name is space-padded on both sides, then the value block adds
	// its own leading space
	expectText(t, doc, "Params\n{\n\tfloat $lacunarity  {2.5}\n\tfloat $gain  {0.5}\n}\n")
}

func TestReferenceRendering(t *testing.T) {
	doc := ir.NewDocument()
	human := doc.AddStructure("Human").WithName("human1")
	human.AddStructure("Age").
		AddPrimitive(ir.NewPrimitive(ir.UnsignedInt16Type, 21))
	doc.AddStructure("ObjectRef").
		AddPrimitive(ir.NewPrimitive(ir.RefType, human))

	want := `Human $human1
{
	Age {unsigned_int16 {21}}
}
ObjectRef {ref {$human1}}
`
	expectText(t, doc, want)

	// byte-for-byte idempotence
	if MustString(doc) != MustString(doc) {
		t.Fatal("re-rendering is not idempotent")
	}
}

func TestDanglingReference(t *testing.T) {
	doc := ir.NewDocument()
	target := doc.AddStructure("Anon")
	doc.AddStructure("ObjectRef").
		AddPrimitive(ir.NewPrimitive(ir.RefType, target))

	err := Encode(doc, discard{})
	if err == nil {
		t.Fatal("expected error for reference to unnamed structure")
	}
	if !strings.Contains(err.Error(), "no name") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIndentNesting(t *testing.T) {
	doc := ir.NewDocument()
	outer := doc.AddStructure("Outer")
	inner := outer.AddStructure("Inner")
	inner.AddPrimitive(ir.NewPrimitive(ir.Int32Type, 1, 2))

	expectText(t, doc, "Outer\n{\n\tInner\n\t{\n\t\tint32\n\t\t{\n\t\t\t1, 2\n\t\t}\n\t}\n}\n")
}

func TestDepthOption(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Age").
		AddPrimitive(ir.NewPrimitive(ir.UnsignedInt16Type, 21))

	expectText(t, doc, "\tAge {unsigned_int16 {21}}\n", Depth(1))
}

func TestProperties(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Node").
		SetProperty("visible", true).
		SetProperty("lod", 2).
		SetProperty("scale", 0.5).
		SetProperty("name", "cube")

	expectText(t, doc, "Node (visible = true, lod = 2, scale = 0.5, name = \"cube\")\n{\n}\n")
}

func TestPropertyFloatNotRounded(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Node").SetProperty("ratio", 1.0/3.0)

	expectText(t, doc, "Node (ratio = 0.3333333333333333)\n{\n}\n", Rounding(2))
}

func TestUnsupportedPropertyValue(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Node").SetProperty("bad", []int{1, 2})

	err := Encode(doc, discard{})
	if err == nil {
		t.Fatal("expected error for unsupported property value type")
	}
	if !strings.Contains(err.Error(), `property "bad"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnknownDataType(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Node").
		AddPrimitive(ir.NewPrimitive(ir.DataType(42), 1))

	if err := Encode(doc, discard{}); err == nil {
		t.Fatal("expected error for unknown data type")
	}
}

func TestVectorLengthMismatch(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("V").
		AddPrimitive(ir.NewVectorPrimitive(ir.FloatType, 3, ir.Vec(1.0, 2.0)))

	err := Encode(doc, discard{})
	if err == nil {
		t.Fatal("expected error for vector length mismatch")
	}
	if !strings.Contains(err.Error(), "want 3") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestComments(t *testing.T) {
	doc := ir.NewDocument()
	human := doc.AddStructure("Human").WithComment("top level")
	human.AddStructure("Age").
		WithComment("how old\nin years").
		AddPrimitive(ir.NewPrimitive(ir.UnsignedInt16Type, 21))

	want := `// top level
Human
{
	// how old
	// in years
	Age {unsigned_int16 {21}}
}
`
	expectText(t, doc, want)
	expectText(t, doc, "Human\n{\n\tAge {unsigned_int16 {21}}\n}\n", EncodeComments(false))
}

func TestCommentOnCollapsedPrimitiveSuppressed(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Age").
		AddPrimitive(ir.NewPrimitive(ir.UnsignedInt16Type, 21).WithComment("hidden"))

	expectText(t, doc, "Age {unsigned_int16 {21}}\n")
}

func TestCommentOnBlockPrimitive(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Data").
		AddPrimitive(ir.NewPrimitive(ir.Int32Type, 1, 2).WithComment("pair"))

	expectText(t, doc, "Data\n{\n\t// pair\n\tint32\n\t{\n\t\t1, 2\n\t}\n}\n")
}

func TestTypeDataPassthrough(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Kind").
		AddPrimitive(ir.NewPrimitive(ir.TypeType, ir.FloatType))

	expectText(t, doc, "Kind {type {float}}\n")
}

func TestBoolData(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Flags").
		AddPrimitive(ir.NewPrimitive(ir.BoolType, true, false, true))

	expectText(t, doc, "Flags\n{\n\tbool\n\t{\n\t\ttrue, false, true\n\t}\n}\n")
}

func TestColorHookWrapsTokens(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddStructure("Age").
		AddPrimitive(ir.NewPrimitive(ir.UnsignedInt16Type, 21))

	colors := &Colors{
		Default: func(v string, _ ...any) string { return "<" + v + ">" },
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	got := MustString(doc, EncodeColors(colors))
	if !strings.Contains(got, "<Age>") || !strings.Contains(got, "<21>") {
		t.Fatalf("color hook not applied: %q", got)
	}
}

// discard swallows writes; used where only the error matters.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
