package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

var keybindings = []*Keybinding{
	{r: 'a', a: event.ActionMoveLeft},
	{r: 'A', a: event.ActionMoveLeft},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'd', a: event.ActionMoveRight},
	{r: 'D', a: event.ActionMoveRight},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 's', a: event.ActionSoftDrop},
	{r: 'S', a: event.ActionSoftDrop},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'w', a: event.ActionHardDrop},
	{r: 'W', a: event.ActionHardDrop},
	{k: tcell.KeyUp, a: event.ActionHardDrop},
	{r: 'j', a: event.ActionRotateCCW},
	{r: 'J', a: event.ActionRotateCCW},
	{r: 'k', a: event.ActionRotateCW},
	{r: 'K', a: event.ActionRotateCW},
	{r: 'l', a: event.ActionRotate180},
	{r: 'L', a: event.ActionRotate180},
	{r: ' ', a: event.ActionHold},
	{r: 'p', a: event.ActionPause},
	{r: 'P', a: event.ActionPause},
}

func scrollMessages(direction int) {
	var scroll int
	if showLogLines > 3 {
		scroll = (showLogLines - 2) * direction
	} else {
		scroll = showLogLines * direction
	}

	r, _ := recent.GetScrollOffset()
	r += scroll
	if r < 0 {
		r = 0
	}
	recent.ScrollTo(r, 0)

	draw <- event.DrawMessages
}

func handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	k := ev.Key()
	r := ev.Rune()

	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		done <- true
		return nil
	case tcell.KeyPgUp:
		scrollMessages(-1)
		return nil
	case tcell.KeyPgDn:
		scrollMessages(1)
		return nil
	}

	if r == 'q' || r == 'Q' {
		done <- true
		return nil
	}

	if activeGame == nil {
		return ev
	}

	for _, bind := range keybindings {
		if (bind.k != 0 && bind.k != k) || (bind.r != 0 && bind.r != r) || (bind.m != 0 && bind.m != ev.Modifiers()) {
			continue
		}

		activeGame.ProcessAction(bind.a)
		return nil
	}

	return ev
}
