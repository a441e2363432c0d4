package ir

import "fmt"

// DataType identifies the kind of data held by a Primitive. It selects
// the value formatting used when the document is encoded and its String
// form is the type token emitted in the textual output.
type DataType int

const (
	BoolType DataType = iota
	Int8Type
	Int16Type
	Int32Type
	Int64Type
	UnsignedInt8Type
	UnsignedInt16Type
	UnsignedInt32Type
	UnsignedInt64Type
	HalfType
	FloatType
	DoubleType
	StringType
	RefType
	TypeType
)

func (t DataType) String() string {
	s, ok := map[DataType]string{
		BoolType:          "bool",
		Int8Type:          "int8",
		Int16Type:         "int16",
		Int32Type:         "int32",
		Int64Type:         "int64",
		UnsignedInt8Type:  "unsigned_int8",
		UnsignedInt16Type: "unsigned_int16",
		UnsignedInt32Type: "unsigned_int32",
		UnsignedInt64Type: "unsigned_int64",
		HalfType:          "half",
		FloatType:         "float",
		DoubleType:        "double",
		StringType:        "string",
		RefType:           "ref",
		TypeType:          "type",
	}[t]
	if ok {
		return s
	}
	return "<unknown data type>"
}

func (t DataType) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "<unknown data type>" {
		return nil, fmt.Errorf("%d is not a data type", t)
	}
	return []byte(s), nil
}

func (t *DataType) UnmarshalText(d []byte) error {
	tt, ok := map[string]DataType{
		"bool":           BoolType,
		"int8":           Int8Type,
		"int16":          Int16Type,
		"int32":          Int32Type,
		"int64":          Int64Type,
		"unsigned_int8":  UnsignedInt8Type,
		"unsigned_int16": UnsignedInt16Type,
		"unsigned_int32": UnsignedInt32Type,
		"unsigned_int64": UnsignedInt64Type,
		"half":           HalfType,
		"float":          FloatType,
		"double":         DoubleType,
		"string":         StringType,
		"ref":            RefType,
		"type":           TypeType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized data type %q", d)
	}
	*t = tt
	return nil
}

func DataTypes() []DataType {
	return []DataType{
		BoolType,
		Int8Type,
		Int16Type,
		Int32Type,
		Int64Type,
		UnsignedInt8Type,
		UnsignedInt16Type,
		UnsignedInt32Type,
		UnsignedInt64Type,
		HalfType,
		FloatType,
		DoubleType,
		StringType,
		RefType,
		TypeType,
	}
}
