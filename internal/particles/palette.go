package particles

import "github.com/lucasb-eyer/go-colorful"

// Palette holds the two colours particles are drawn in.
type Palette struct {
	Accent  colorful.Color
	Neutral colorful.Color
}

var (
	lightPalette = Palette{
		Accent:  mustHex("#0000ff"),
		Neutral: mustHex("#f1f1f1"),
	}
	darkPalette = Palette{
		Accent:  mustHex("#3b82f6"),
		Neutral: mustHex("#ffffff"),
	}
)

// PaletteFor returns the particle palette of the light or dark theme.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
