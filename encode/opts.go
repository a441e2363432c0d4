package encode

type EncodeOption func(*EncState)

// Rounding keeps n decimal places for float and double primitive data.
// Negative n is treated as 0. Property values are never rounded.
func Rounding(n int) EncodeOption {
	if n < 0 {
		n = 0
	}
	return func(es *EncState) { es.rounding = &n }
}

// FullPrecision disables rounding of float and double primitive data.
func FullPrecision() EncodeOption {
	return func(es *EncState) { es.rounding = nil }
}

// Depth starts encoding at the given indent depth, for embedding
// fragments in already-indented output.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeComments controls emission of attached comments (default on).
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
