package renderers

import (
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/render"
)

type glyph struct {
	r     rune
	color tcell.Color
}

var kindGlyphs = map[string]glyph{
	"grunt":   {'g', render.RgbGrunt},
	"weaver":  {'w', render.RgbWeaver},
	"drifter": {'d', render.RgbDrifter},
	"brute":   {'B', render.RgbBrute},
	"sapper":  {'s', render.RgbSapper},
}

// glyphFor falls back to the upper-cased first letter of unknown kinds
func glyphFor(kind string) glyph {
	if g, ok := kindGlyphs[kind]; ok {
		return g
	}
	r, _ := utf8.DecodeRuneInString(kind)
	if r == utf8.RuneError {
		r = '?'
	}
	return glyph{unicode.ToUpper(r), render.RgbMonster}
}

const (
	glyphBase      = '⌂'
	glyphGate      = '∩'
	glyphTower     = 'T'
	glyphRubble    = 'x'
	glyphShot      = '•'
	glyphGrid      = '·'
	gridStepX      = 8
	gridStepY      = 4
	baseLowPercent = 0.3
)
