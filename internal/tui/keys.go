package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	buildInfo key.Binding
	submit    key.Binding
	more      key.Binding
	refresh   key.Binding
	search    key.Binding
	like      key.Binding
	copy      key.Binding
	author    key.Binding
	me        key.Binding
	compose   key.Binding
	follow    key.Binding
	signOut   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	more:      key.NewBinding(key.WithKeys("m")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	search:    key.NewBinding(key.WithKeys("/")),
	like:      key.NewBinding(key.WithKeys("l")),
	copy:      key.NewBinding(key.WithKeys("c")),
	author:    key.NewBinding(key.WithKeys("p")),
	me:        key.NewBinding(key.WithKeys("P")),
	compose:   key.NewBinding(key.WithKeys("n")),
	follow:    key.NewBinding(key.WithKeys("f")),
	signOut:   key.NewBinding(key.WithKeys("o")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
