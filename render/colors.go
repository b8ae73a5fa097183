package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGrid       = tcell.NewRGBColor(45, 47, 64)    // Faint dot grid
	RgbHudBg      = tcell.NewRGBColor(36, 40, 59)    // Status strip
	RgbHudFg      = tcell.NewRGBColor(192, 202, 245) // Status text
	RgbHudAlert   = tcell.NewRGBColor(247, 118, 142) // Degraded or game over

	RgbBase      = tcell.NewRGBColor(122, 162, 247)
	RgbBaseLow   = tcell.NewRGBColor(255, 80, 80)
	RgbGate      = tcell.NewRGBColor(187, 154, 247)
	RgbTower     = tcell.NewRGBColor(158, 206, 106)
	RgbTowerDead = tcell.NewRGBColor(86, 95, 137)
	RgbShot      = tcell.NewRGBColor(255, 255, 0)

	RgbGrunt   = tcell.NewRGBColor(255, 158, 100)
	RgbWeaver  = tcell.NewRGBColor(224, 175, 104)
	RgbDrifter = tcell.NewRGBColor(125, 207, 255)
	RgbBrute   = tcell.NewRGBColor(255, 0, 0)
	RgbSapper  = tcell.NewRGBColor(255, 117, 127)
	RgbMonster = tcell.NewRGBColor(200, 200, 200) // Unknown kinds
)
