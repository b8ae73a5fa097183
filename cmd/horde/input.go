package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/engine"
)

type action uint8

const (
	actionNone action = iota
	actionCommand
	actionMute
	actionQuit
)

// keyAction maps a key press onto a loop command or a local action
func keyAction(key tcell.Key, r rune) (action, engine.Command) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, engine.CmdEnd
	case tcell.KeyRune:
		switch r {
		case 'q':
			return actionQuit, engine.CmdEnd
		case ' ', 'p':
			return actionCommand, engine.CmdTogglePause
		case '+', '=':
			return actionCommand, engine.CmdSpeedUp
		case '-', '_':
			return actionCommand, engine.CmdSpeedDown
		case 'm':
			return actionMute, engine.CmdRequestRender
		}
	}
	return actionNone, 0
}

// pollInput forwards terminal events to the loop until quit or the screen closes
func (s *session) pollInput(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if !s.handleKey(ev.Key(), ev.Rune()) {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
			s.loop.Send(engine.CmdRequestRender)
		}
	}
}

// handleKey applies one key press, false once the session should stop reading input
func (s *session) handleKey(key tcell.Key, r rune) bool {
	act, cmd := keyAction(key, r)
	switch act {
	case actionQuit:
		s.loop.Send(cmd)
		return false
	case actionMute:
		s.statMuted.Store(s.player.ToggleMute())
		s.loop.Send(cmd)
	case actionCommand:
		s.loop.Send(cmd)
	}
	return true
}
