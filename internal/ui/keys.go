package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Packs view
	Search       key.Binding
	ToggleOwner  key.Binding
	SortName     key.Binding
	SortCards    key.Binding
	SortUpdated  key.Binding
	ResetFilters key.Binding
	NewPack      key.Binding
	RenamePack   key.Binding
	DeletePack   key.Binding
	OpenPack     key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
	GrowPage     key.Binding
	ShrinkPage   key.Binding
	EditBounds   key.Binding
	Refresh      key.Binding
	Profile      key.Binding
	SignOut      key.Binding

	// Cards view
	SortGrade key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		CycleTheme: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ToggleOwner:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "all/mine")),
		SortName:     key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "sort by name")),
		SortCards:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "sort by cards")),
		SortUpdated:  key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "sort by updated")),
		ResetFilters: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset filters")),
		NewPack:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new pack")),
		RenamePack:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename pack")),
		DeletePack:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete pack")),
		OpenPack:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open pack")),
		PrevPage:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
		NextPage:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		GrowPage:     key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "larger pages")),
		ShrinkPage:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller pages")),
		EditBounds:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "card-count range")),
		Refresh:      key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
		Profile:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		SignOut:      key.NewBinding(key.WithKeys("Q"), key.WithHelp("Q", "sign out")),

		SortGrade: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "sort by grade")),
	}
}
