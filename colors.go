package scope

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"yellow":  "#ffff00",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
}

// ResolveColor turns a colour name, a palette reference (C0 to C9 for
// Category10, T0 to T9 for Tableau10) or a "#rrggbb" string into its
// "#rrggbb" form.
func ResolveColor(str string) (string, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if c, ok := namedColors[str]; ok {
		return c, nil
	}
	if len(str) == 2 && (str[0] == 'c' || str[0] == 't') {
		i, err := strconv.Atoi(str[1:])
		if err != nil {
			return "", fmt.Errorf("%s: unknown colour", str)
		}
		if str[0] == 'c' {
			return Category10[i], nil
		}
		return Tableau10[i], nil
	}
	if len(str) == 7 && str[0] == '#' {
		if _, err := strconv.ParseUint(str[1:], 16, 32); err != nil {
			return "", fmt.Errorf("%s: invalid colour", str)
		}
		return str, nil
	}
	return "", fmt.Errorf("%s: unknown colour", str)
}

// ParseColor is ResolveColor for backends working with image/color values.
func ParseColor(str string) (color.RGBA, error) {
	hex, err := ResolveColor(str)
	if err != nil {
		return color.RGBA{}, err
	}
	v, _ := strconv.ParseUint(hex[1:], 16, 32)
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
