package render

import "github.com/rook-computer/pixeled/internal/canvas"

// Global render configuration for colors.
var (
	// Background fills every cell the canvas does not cover.
	Background = canvas.RGB{R: 0x08, G: 0x08, B: 0x08}
	GridColor  = canvas.White

	// Status bar colors.
	StatusBackground = canvas.RGB{R: 0x20, G: 0x20, B: 0x20}
	StatusForeground = canvas.RGB{R: 0xD0, G: 0xD0, B: 0xD0}
)
