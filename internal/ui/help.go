package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

func (m Model) renderHelp() string {
	sections := []struct {
		title string
		keys  []key.Binding
	}{
		{"Global", []key.Binding{m.keys.Help, m.keys.CycleTheme, m.keys.Quit}},
		{"Packs", []key.Binding{
			m.keys.Search, m.keys.ToggleOwner,
			m.keys.SortName, m.keys.SortCards, m.keys.SortUpdated,
			m.keys.EditBounds, m.keys.ResetFilters,
			m.keys.NewPack, m.keys.RenamePack, m.keys.DeletePack,
			m.keys.OpenPack, m.keys.PrevPage, m.keys.NextPage,
			m.keys.GrowPage, m.keys.ShrinkPage,
			m.keys.Refresh, m.keys.Profile, m.keys.SignOut,
		}},
		{"Cards", []key.Binding{
			m.keys.Search, m.keys.SortGrade, m.keys.SortUpdated,
			m.keys.PrevPage, m.keys.NextPage, m.keys.GrowPage, m.keys.ShrinkPage,
			m.keys.Refresh, m.keys.Escape,
		}},
	}

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Title.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.keys {
			help := binding.Help()
			b.WriteString("  ")
			b.WriteString(m.styles.Accent.Render(padRight(help.Key, 8)))
			b.WriteString(m.styles.Text.Render(help.Desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("press any key to close"))
	return m.centered(m.styles.Box.Render(b.String()))
}
