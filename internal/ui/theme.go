package ui

import "image/color"

type Theme struct {
	AppBackground color.RGBA
	TopBar        color.RGBA
	Canvas        color.RGBA
	Page          color.RGBA
	Border        color.RGBA
	StatusBar     color.RGBA
	StatusText    color.RGBA
	Accent        color.RGBA
	Shadow        color.RGBA
	Selection     color.RGBA
	Caret         color.RGBA

	TopBarHeightDp int
	StatusHeightDp int
	PageMarginDp   int
	PagePaddingDp  int
	// CaretBlinkFrames is the on/off period of the caret at 60 ticks per second.
	CaretBlinkFrames int
}

func DefaultTheme() Theme {
	return Theme{
		AppBackground:    color.RGBA{0xF3, 0xF5, 0xF8, 0xFF},
		TopBar:           color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		Canvas:           color.RGBA{0xE2, 0xE7, 0xEF, 0xFF},
		Page:             color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Border:           color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		StatusBar:        color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		StatusText:       color.RGBA{0x2A, 0x38, 0x50, 0xFF},
		Accent:           color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		Shadow:           color.RGBA{0xC8, 0xCF, 0xDB, 0xFF},
		Selection:        color.RGBA{0xBF, 0xD6, 0xFF, 0xFF},
		Caret:            color.RGBA{0x15, 0x54, 0xA4, 0xFF},
		TopBarHeightDp:   8,
		StatusHeightDp:   28,
		PageMarginDp:     24,
		PagePaddingDp:    18,
		CaretBlinkFrames: 30,
	}
}
