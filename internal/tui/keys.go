package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	toggleExit  key.Binding
	toggleToast key.Binding
	toggleEntry key.Binding
	configure   key.Binding
	syncNow     key.Binding
	copyResult  key.Binding
	buildInfo   key.Binding

	up      key.Binding
	down    key.Binding
	tab     key.Binding
	backtab key.Binding
	esc     key.Binding
	quit    key.Binding
	forceQ  key.Binding
}

var keys = keyMap{
	toggleExit:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "sync after closing a game")),
	toggleToast: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toast after auto sync")),
	toggleEntry: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "sync when starting a game")),
	configure:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "configure game")),
	syncNow:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync now")),
	copyResult:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy result")),
	buildInfo:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),

	up:      key.NewBinding(key.WithKeys("up")),
	down:    key.NewBinding(key.WithKeys("down")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	forceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
}
