package core

import (
	"fmt"
	"strings"
)

// Color is a render-only fill color for an entity or overlay.
// The terminal maps it to ANSI 256-color codes, the window to RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorSeaGreen
	ColorRoyalBlue
	ColorLightGray
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "brightred",
	ColorBrightGreen:   "brightgreen",
	ColorBrightYellow:  "brightyellow",
	ColorBrightBlue:    "brightblue",
	ColorBrightMagenta: "brightmagenta",
	ColorBrightCyan:    "brightcyan",
	ColorBrightWhite:   "brightwhite",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorSeaGreen:      "seagreen",
	ColorRoyalBlue:     "royalblue",
	ColorLightGray:     "lightgray",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor resolves a color name case-insensitively.
// "grey" is accepted as an alias of "gray".
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "grey" {
		key = "gray"
	}
	for c, n := range colorNames {
		if n == key {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// MarshalYAML encodes the color by name.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a color name (yaml.v3 obsolete unmarshaler form).
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseColor(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
