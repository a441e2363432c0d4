package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	BinaryFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":      TextFormat,
		"text":   TextFormat,
		"oddl":   TextFormat,
		"b":      BinaryFormat,
		"binary": BinaryFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case BinaryFormat:
		return []byte("binary"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool   { return f == TextFormat }
func (f Format) IsBinary() bool { return f == BinaryFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TextFormat:
		return ".oddl"
	case BinaryFormat:
		return ".oddlb"
	default:
		return ""
	}
}

// AllFormats returns all recognized formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, BinaryFormat}
}
