package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// palette holds the named colors roster entries may refer to.
var palette = map[string]string{
	"white":     "#FFFFFF",
	"black":     "#000000",
	"gray":      "#808080",
	"darkgray":  "#404040",
	"lightgray": "#C0C0C0",
	"green":     "#32C832",
	"blue":      "#6496FF",
	"red":       "#FF6464",
	"yellow":    "#FFFF64",
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// ParseColor resolves a palette name or a hex string to a tcell.Color.
func ParseColor(value string) (tcell.Color, error) {
	if hex, ok := palette[strings.ToLower(value)]; ok {
		return ParseHexColor(hex)
	}
	return ParseHexColor(value)
}

// MustColor resolves a palette name or hex string, panicking on error.
func MustColor(value string) tcell.Color {
	color, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return color
}
