package encode

// EncodeOption configures Encode and EncodeEntries.
type EncodeOption func(*EncState)

// EncodeColors renders path, delimiter and value in color.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
