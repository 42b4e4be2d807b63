package window

import (
	"image/color"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Background is the clear color.
var Background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
	core.ColorRed:           {R: 0xcd, G: 0x31, B: 0x31, A: 0xff},
	core.ColorGreen:         {R: 0x0d, G: 0xbc, B: 0x79, A: 0xff},
	core.ColorYellow:        {R: 0xe5, G: 0xe5, B: 0x10, A: 0xff},
	core.ColorBlue:          {R: 0x24, G: 0x72, B: 0xc8, A: 0xff},
	core.ColorMagenta:       {R: 0xbc, G: 0x3f, B: 0xbc, A: 0xff},
	core.ColorCyan:          {R: 0x11, G: 0xa8, B: 0xcd, A: 0xff},
	core.ColorWhite:         {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorBrightRed:     {R: 0xf1, G: 0x4c, B: 0x4c, A: 0xff},
	core.ColorBrightGreen:   {R: 0x23, G: 0xd1, B: 0x8b, A: 0xff},
	core.ColorBrightYellow:  {R: 0xf5, G: 0xf5, B: 0x43, A: 0xff},
	core.ColorBrightBlue:    {R: 0x3b, G: 0x8e, B: 0xea, A: 0xff},
	core.ColorBrightMagenta: {R: 0xd6, G: 0x70, B: 0xd6, A: 0xff},
	core.ColorBrightCyan:    {R: 0x29, G: 0xb8, B: 0xdb, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	core.ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	core.ColorSeaGreen:      {R: 0x2e, G: 0x8b, B: 0x57, A: 0xff},
	core.ColorRoyalBlue:     {R: 0x41, G: 0x69, B: 0xe1, A: 0xff},
	core.ColorLightGray:     {R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
}

// RGBA returns the window color for c. Unknown colors render as the
// default foreground.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
