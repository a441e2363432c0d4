package ir

// Child is a node in a structure's ordered child list: either a nested
// *Structure or a leaf *Primitive. The encoder dispatches on the concrete
// type.
type Child interface {
	childNode()
}

func (*Structure) childNode() {}
func (*Primitive) childNode() {}

// Primitive is a leaf holding typed scalar or vector data.
//
// When VectorSize is 0, Values holds a flat sequence of scalars. When
// VectorSize is n > 0, every element of Values must be a vector of
// exactly n scalars: a []any (see Vec) or a typed numeric slice such as
// []float64 or []uint32. Scalars are ordinary Go values matching
// DataType: bool, any integer kind, float32/float64, string, *Structure
// for RefType, or DataType for TypeType.
type Primitive struct {
	DataType   DataType
	Name       string
	VectorSize int
	Values     []any

	// Comment, when non-empty, is emitted as "//" lines above the
	// primitive. MaxPerLine, when > 0, caps how many elements (or
	// vectors) are placed on one output line.
	Comment    string
	MaxPerLine int
}

func NewPrimitive(t DataType, values ...any) *Primitive {
	return &Primitive{
		DataType: t,
		Values:   values,
	}
}

// NewVectorPrimitive builds a primitive whose data elements are
// fixed-size vectors. Each vector should have exactly size scalars; the
// encoder rejects mismatches.
func NewVectorPrimitive(t DataType, size int, vectors ...[]any) *Primitive {
	p := &Primitive{
		DataType:   t,
		VectorSize: size,
		Values:     make([]any, 0, len(vectors)),
	}
	for _, vec := range vectors {
		p.Values = append(p.Values, vec)
	}
	return p
}

// Vec groups scalars into one vector element.
func Vec(scalars ...any) []any {
	return scalars
}

func (p *Primitive) WithName(name string) *Primitive {
	p.Name = name
	return p
}

func (p *Primitive) WithComment(comment string) *Primitive {
	p.Comment = comment
	return p
}

func (p *Primitive) WithMaxPerLine(n int) *Primitive {
	p.MaxPerLine = n
	return p
}

// IsSimple reports whether the primitive renders inline when it is the
// sole child of a structure: exactly one data element of at most four
// scalars.
func (p *Primitive) IsSimple() bool {
	return len(p.Values) == 1 && p.VectorSize <= 4
}

// Property is one key-value entry of a structure's ordered property
// list. Value must be a bool, integer, float, or string; anything else
// fails at encode time.
type Property struct {
	Key   string
	Value any
}

// Structure is a named, typed node of the document tree.
type Structure struct {
	Identifier string
	Name       string
	Children   []Child
	Properties []Property
	Comment    string
}

func NewStructure(identifier string) *Structure {
	return &Structure{Identifier: identifier}
}

func (s *Structure) WithName(name string) *Structure {
	s.Name = name
	return s
}

func (s *Structure) WithComment(comment string) *Structure {
	s.Comment = comment
	return s
}

// SetProperty appends the property, or updates it in place when the key
// is already present, preserving insertion order either way.
func (s *Structure) SetProperty(key string, value any) *Structure {
	for i := range s.Properties {
		if s.Properties[i].Key == key {
			s.Properties[i].Value = value
			return s
		}
	}
	s.Properties = append(s.Properties, Property{Key: key, Value: value})
	return s
}

// AddStructure appends a new substructure and returns it, so callers can
// attach nested content to the handle.
func (s *Structure) AddStructure(identifier string) *Structure {
	sub := NewStructure(identifier)
	s.Children = append(s.Children, sub)
	return sub
}

// AddPrimitive appends a primitive child and returns the owning
// structure for chaining.
func (s *Structure) AddPrimitive(p *Primitive) *Structure {
	s.Children = append(s.Children, p)
	return s
}

// IsSimple reports whether the structure renders in the collapsed
// single-line form: unnamed, no properties, and exactly one simple
// primitive child.
func (s *Structure) IsSimple() bool {
	if len(s.Children) != 1 {
		return false
	}
	if len(s.Properties) != 0 {
		return false
	}
	if s.Name != "" {
		return false
	}
	p, ok := s.Children[0].(*Primitive)
	if !ok {
		return false
	}
	return p.IsSimple()
}

func (s *Structure) find(name string) *Structure {
	if s.Name == name {
		return s
	}
	for _, child := range s.Children {
		sub, ok := child.(*Structure)
		if !ok {
			continue
		}
		if res := sub.find(name); res != nil {
			return res
		}
	}
	return nil
}

// Document is the root collection of top-level structures.
type Document struct {
	Structures []*Structure
}

func NewDocument() *Document {
	return &Document{}
}

// AddStructure appends a new top-level structure and returns it.
func (d *Document) AddStructure(identifier string) *Structure {
	s := NewStructure(identifier)
	d.Structures = append(d.Structures, s)
	return s
}

// Find returns the first structure in document order whose name matches,
// or nil. Anonymous structures never match.
func (d *Document) Find(name string) *Structure {
	if name == "" {
		return nil
	}
	for _, s := range d.Structures {
		if res := s.find(name); res != nil {
			return res
		}
	}
	return nil
}
