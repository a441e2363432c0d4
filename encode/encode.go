package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/oddl-format/go-oddl/debug"
	"github.com/oddl-format/go-oddl/ir"
)

// DefaultRounding is the number of decimal places kept for float and
// double data when no rounding option is given.
const DefaultRounding = 6

type EncState struct {
	depth    int
	rounding *int
	comments bool

	Color func(ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	rounding := DefaultRounding
	es := &EncState{
		rounding: &rounding,
		comments: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode renders the document to w in the canonical text form. The
// output is a pure function of the document and the options; encoding
// the same document twice yields byte-identical output. The document is
// only read and must not be mutated concurrently.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	for _, s := range doc.Structures {
		if err := encodeStructure(s, w, es); err != nil {
			return err
		}
	}
	if debug.Encode() {
		debug.LogAny(map[string]int{"structures": len(doc.Structures)})
	}
	return nil
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) indentString() string {
	return strings.Repeat("\t", es.depth)
}

func applyColor(es *EncState, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}

// Comment writing

func writeCommentLines(comment string, w io.Writer, es *EncState) error {
	if !es.comments || comment == "" {
		return nil
	}
	for _, ln := range strings.Split(comment, "\n") {
		line := "//"
		if ln != "" {
			line += " " + ln
		}
		line = applyColor(es, CommentColor, line)
		if err := writeString(w, es.indentString()+line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Structure encoding

func encodeStructure(s *ir.Structure, w io.Writer, es *EncState) error {
	if err := writeCommentLines(s.Comment, w, es); err != nil {
		return err
	}
	if err := writeString(w, es.indentString()+applyColor(es, IdentifierColor, s.Identifier)); err != nil {
		return err
	}
	if s.Name != "" {
		if err := writeString(w, " "+applyColor(es, NameColor, "$"+s.Name)); err != nil {
			return err
		}
	}
	if len(s.Properties) != 0 {
		if err := encodeProperties(s.Properties, w, es); err != nil {
			return err
		}
	}
	if s.IsSimple() {
		if err := writeString(w, " {"); err != nil {
			return err
		}
		if err := encodePrimitive(s.Children[0].(*ir.Primitive), w, es, true); err != nil {
			return err
		}
		return writeString(w, "}\n")
	}
	if err := writeString(w, "\n"+es.indentString()+"{\n"); err != nil {
		return err
	}
	es.depth++
	for _, child := range s.Children {
		var err error
		switch c := child.(type) {
		case *ir.Primitive:
			err = encodePrimitive(c, w, es, false)
		case *ir.Structure:
			err = encodeStructure(c, w, es)
		default:
			err = fmt.Errorf("%w: unknown child node %T", ErrEncoding, child)
		}
		if err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	return writeString(w, es.indentString()+"}\n")
}

// Property encoding

func encodeProperties(props []ir.Property, w io.Writer, es *EncState) error {
	if err := writeString(w, " ("); err != nil {
		return err
	}
	for i := range props {
		prop := &props[i]
		v, err := propertyValueText(prop)
		if err != nil {
			return err
		}
		pair := applyColor(es, FieldColor, prop.Key) +
			applyColor(es, SepColor, " = ") +
			applyColor(es, ValueColor, v)
		if i > 0 {
			pair = ", " + pair
		}
		if err := writeString(w, pair); err != nil {
			return err
		}
	}
	return writeString(w, ")")
}

// propertyValueText formats a property value. Property floats are never
// subject to the rounding option.
func propertyValueText(prop *ir.Property) (string, error) {
	switch v := prop.Value.(type) {
	case bool:
		return strconv.FormatBool(v), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return formatInt(v)
	case float32:
		return floatText(float64(v), 32), nil
	case float64:
		return floatText(v, 64), nil
	case string:
		return "\"" + v + "\"", nil
	default:
		return "", fmt.Errorf("%w: unsupported value type %T for property %q",
			ErrEncoding, prop.Value, prop.Key)
	}
}

// Primitive encoding

func encodePrimitive(p *ir.Primitive, w io.Writer, es *EncState, noIndent bool) error {
	conv, err := es.formatter(p.DataType)
	if err != nil {
		return err
	}
	if !noIndent {
		if err := writeCommentLines(p.Comment, w, es); err != nil {
			return err
		}
		if err := writeString(w, es.indentString()); err != nil {
			return err
		}
	}
	head := applyColor(es, TypeColor, p.DataType.String())
	if p.VectorSize > 0 {
		head += "[" + strconv.Itoa(p.VectorSize) + "]"
	}
	if p.Name != "" {
		head += " " + applyColor(es, NameColor, "$"+p.Name) + " "
	}
	if err := writeString(w, head); err != nil {
		return err
	}
	if err := encodeValueBlock(p, conv, w, es); err != nil {
		return err
	}
	if noIndent {
		return nil
	}
	return writeString(w, "\n")
}

func encodeValueBlock(p *ir.Primitive, conv convFunc, w io.Writer, es *EncState) error {
	switch {
	case len(p.Values) == 0:
		return writeString(w, " { }")
	case len(p.Values) == 1:
		elem, err := elementText(p, p.Values[0], conv, es)
		if err != nil {
			return err
		}
		if p.VectorSize == 0 {
			return writeString(w, " {"+elem+"}")
		}
		return writeString(w, " { "+elem+" }")
	}

	if err := writeString(w, "\n"+es.indentString()+"{\n"); err != nil {
		return err
	}
	es.depth++
	elems := make([]string, len(p.Values))
	for i, v := range p.Values {
		elem, err := elementText(p, v, conv, es)
		if err != nil {
			es.depth--
			return err
		}
		elems[i] = elem
	}
	perLine := p.MaxPerLine
	if perLine <= 0 {
		perLine = len(elems)
	}
	for start := 0; start < len(elems); start += perLine {
		end := min(start+perLine, len(elems))
		line := es.indentString() + strings.Join(elems[start:end], ", ")
		if end < len(elems) {
			line += ","
		}
		if err := writeString(w, line+"\n"); err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	return writeString(w, es.indentString()+"}")
}

// elementText renders one data element: a scalar, or a brace-wrapped
// vector when the primitive has a vector size.
func elementText(p *ir.Primitive, v any, conv convFunc, es *EncState) (string, error) {
	if p.VectorSize == 0 {
		s, err := conv(v)
		if err != nil {
			return "", err
		}
		return applyColor(es, ValueColor, s), nil
	}
	vec, ok := asVector(v)
	if !ok {
		return "", fmt.Errorf("%w: vector element is %T, want a slice of scalars", ErrEncoding, v)
	}
	if len(vec) != p.VectorSize {
		return "", fmt.Errorf("%w: vector has %d elements, want %d", ErrEncoding, len(vec), p.VectorSize)
	}
	parts := make([]string, len(vec))
	for i, s := range vec {
		t, err := conv(s)
		if err != nil {
			return "", err
		}
		parts[i] = applyColor(es, ValueColor, t)
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

func asVector(v any) ([]any, bool) {
	switch vec := v.(type) {
	case []any:
		return vec, true
	case []float64:
		return scalarSlice(vec), true
	case []float32:
		return scalarSlice(vec), true
	case []int:
		return scalarSlice(vec), true
	case []int8:
		return scalarSlice(vec), true
	case []int16:
		return scalarSlice(vec), true
	case []int32:
		return scalarSlice(vec), true
	case []int64:
		return scalarSlice(vec), true
	case []uint:
		return scalarSlice(vec), true
	case []uint8:
		return scalarSlice(vec), true
	case []uint16:
		return scalarSlice(vec), true
	case []uint32:
		return scalarSlice(vec), true
	case []uint64:
		return scalarSlice(vec), true
	default:
		return nil, false
	}
}

func scalarSlice[T any](vec []T) []any {
	res := make([]any, len(vec))
	for i, s := range vec {
		res[i] = s
	}
	return res
}

// Value conversion functions, keyed by data type.

type convFunc func(any) (string, error)

func (es *EncState) formatter(t ir.DataType) (convFunc, error) {
	switch t {
	case ir.BoolType:
		return formatBool, nil
	case ir.FloatType, ir.DoubleType:
		if es.rounding == nil {
			return formatFloat, nil
		}
		places := *es.rounding
		return func(v any) (string, error) {
			return formatFloatRounded(v, places)
		}, nil
	case ir.Int8Type, ir.Int16Type, ir.Int32Type, ir.Int64Type,
		ir.UnsignedInt8Type, ir.UnsignedInt16Type, ir.UnsignedInt32Type,
		ir.UnsignedInt64Type, ir.HalfType:
		// half values carry their 16-bit pattern and render through
		// the integer path
		return formatInt, nil
	case ir.StringType:
		return formatString, nil
	case ir.RefType:
		return formatRef, nil
	case ir.TypeType:
		return formatTypeName, nil
	default:
		return nil, fmt.Errorf("%w: unknown primitive data type %d", ErrEncoding, t)
	}
}

func formatBool(v any) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", fmt.Errorf("%w: bool data holds %T", ErrEncoding, v)
	}
	return strconv.FormatBool(b), nil
}

func formatInt(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10), nil
	case int8:
		return strconv.FormatInt(int64(n), 10), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	default:
		return "", fmt.Errorf("%w: integer data holds %T", ErrEncoding, v)
	}
}

// formatFloat renders full precision. Non-finite values render as "0.0"
// rather than failing.
func formatFloat(v any) (string, error) {
	switch f := v.(type) {
	case float32:
		return floatText(float64(f), 32), nil
	case float64:
		return floatText(f, 64), nil
	case int:
		return floatText(float64(f), 64), nil
	default:
		return "", fmt.Errorf("%w: float data holds %T", ErrEncoding, v)
	}
}

func formatFloatRounded(v any, places int) (string, error) {
	var f float64
	switch x := v.(type) {
	case float32:
		f = float64(x)
	case float64:
		f = x
	case int:
		f = float64(x)
	default:
		return "", fmt.Errorf("%w: float data holds %T", ErrEncoding, v)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "0.0", nil
	}
	pow := math.Pow(10, float64(places))
	// the scaled value can overflow for large magnitudes; such
	// values stay unrounded
	if prod := f * pow; !math.IsInf(prod, 0) && !math.IsNaN(prod) {
		f = math.Round(prod) / pow
	}
	return floatText(f, 64), nil
}

func floatText(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "0.0"
	}
	v := strconv.FormatFloat(f, 'f', -1, bits)
	// whole-number floats keep a trailing ".0"
	if !strings.ContainsRune(v, '.') {
		v += ".0"
	}
	return v
}

// formatString writes string data verbatim. The caller supplies any
// quoting; only property values are quoted by the writer.
func formatString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: string data holds %T", ErrEncoding, v)
	}
	return s, nil
}

func formatRef(v any) (string, error) {
	target, ok := v.(*ir.Structure)
	if !ok || target == nil {
		return "", fmt.Errorf("%w: ref data holds %T, want *ir.Structure", ErrEncoding, v)
	}
	if target.Name == "" {
		return "", fmt.Errorf("%w: ref target %q has no name", ErrEncoding, target.Identifier)
	}
	return "$" + target.Name, nil
}

func formatTypeName(v any) (string, error) {
	switch t := v.(type) {
	case ir.DataType:
		return t.String(), nil
	case string:
		return t, nil
	default:
		return "", fmt.Errorf("%w: type data holds %T", ErrEncoding, v)
	}
}
