package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/cactusflap/internal/core"
)

// Window key bindings.
var (
	flapKeys       = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	startKeys      = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	quitKeys       = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
	screenshotKeys = []ebiten.Key{ebiten.KeyF12}
)

// polled is the input gathered during one Update.
type polled struct {
	actions    []core.Action
	quit       bool
	screenshot bool
}

// pollInput maps keys pressed this tick to game actions. justPressed is
// inpututil.IsKeyJustPressed outside tests.
func pollInput(justPressed func(ebiten.Key) bool, clicked bool) polled {
	var p polled
	if anyPressed(justPressed, quitKeys) {
		p.quit = true
		return p
	}
	p.screenshot = anyPressed(justPressed, screenshotKeys)
	if clicked || anyPressed(justPressed, startKeys) {
		p.actions = append(p.actions, core.ActionStart)
	}
	if anyPressed(justPressed, flapKeys) {
		p.actions = append(p.actions, core.ActionFlap)
	}
	return p
}

func anyPressed(justPressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if justPressed(k) {
			return true
		}
	}
	return false
}
