package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a vertical stack of labelled text inputs with one focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...formField) form {
	f := form{}
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.CharLimit = 256
		input.Width = 40
		if field.password {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '*'
		}
		if i == 0 {
			input.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, input)
	}
	return f
}

type formField struct {
	label       string
	placeholder string
	password    bool
}

func (f form) value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

// cycle moves focus by delta, wrapping around.
func (f *form) cycle(delta int) {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// view renders the form with the theme's label styling.
func (f form) view(s Styles) string {
	var b strings.Builder
	for i := range f.inputs {
		label := s.Muted.Render(f.labels[i])
		if i == f.focus {
			label = s.Accent.Render(f.labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		if i < len(f.inputs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
