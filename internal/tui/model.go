// Package tui is the interactive form front-end. It collects the same
// parameters as the convert command (number, source base, target base,
// precision) and batches calls into the conversion core exactly like the
// CLI does, rendering results in place of printing them.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HenrykHaniewicz/base-converter/internal/radix"
)

// field identifies the currently focused form field.
type field int

const (
	fieldNumber field = iota
	fieldFrom
	fieldTo
	fieldPrecision
	fieldCount
)

var fieldLabels = [fieldCount]string{"Number", "From base", "To base", "Precision"}

// Model is the main Bubble Tea model.
type Model struct {
	// Dimensions
	width, height int
	ready         bool

	// Form state
	inputs [fieldCount]textinput.Model
	focus  field

	// Single-conversion result
	result    string
	truncated bool
	err       error

	// All-bases sweep
	sweep     bool
	sweepView viewport.Model
}

// NewModel creates the conversion form with the CLI's defaults: base 10 in,
// base 2 out, precision 50.
func NewModel() Model {
	var m Model
	for f := fieldNumber; f < fieldCount; f++ {
		ti := textinput.New()
		ti.CharLimit = 80
		ti.Width = 24
		m.inputs[f] = ti
	}
	m.inputs[fieldNumber].Placeholder = "42"
	m.inputs[fieldFrom].SetValue("10")
	m.inputs[fieldTo].SetValue("2")
	m.inputs[fieldPrecision].SetValue("50")
	m.inputs[fieldNumber].Focus()
	m.sweepView = viewport.New(60, 20)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sweepView.Width = msg.Width - 4
		m.sweepView.Height = msg.Height - 12
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "enter":
			m.convert()
			return m, nil
		case "ctrl+a":
			m.sweep = !m.sweep
			m.convert()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("basecv - base converter"))
	b.WriteByte('\n')

	for f := fieldNumber; f < fieldCount; f++ {
		label := labelStyle
		if f == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[f]))
		b.WriteString(m.inputs[f].View())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.sweep:
		b.WriteString(m.sweepView.View())
	case m.result != "":
		out := resultStyle.Render(m.result)
		if m.truncated {
			out += " " + noteStyle.Render("(truncated)")
		}
		b.WriteString(resultBoxStyle.Render(out))
	}
	b.WriteByte('\n')

	b.WriteString(helpStyle.Render("enter convert - tab next field - ctrl+a all bases - esc quit"))
	return b.String()
}

// convert runs the core on the current form values.
func (m *Model) convert() {
	m.err = nil
	m.result = ""
	m.truncated = false

	input := strings.TrimSpace(m.inputs[fieldNumber].Value())
	if input == "" {
		return
	}
	from, to, precision, err := m.formParams()
	if err != nil {
		m.err = err
		return
	}

	if m.sweep {
		results, err := radix.AllBases(input, from, precision, false)
		if err != nil {
			m.err = err
			return
		}
		var sb strings.Builder
		for _, res := range results {
			fmt.Fprintf(&sb, "base %3d: %s\n", res.Base, res.Output)
		}
		m.sweepView.SetContent(sb.String())
		return
	}

	out, err := radix.Convert(input, from, to, precision)
	if err != nil && !radix.IsPrecisionExceeded(err) {
		m.err = err
		return
	}
	m.result = out
	m.truncated = err != nil
}

func (m *Model) formParams() (from, to, precision int, err error) {
	if from, err = strconv.Atoi(strings.TrimSpace(m.inputs[fieldFrom].Value())); err != nil {
		return 0, 0, 0, fmt.Errorf("source base must be an integer")
	}
	if to, err = strconv.Atoi(strings.TrimSpace(m.inputs[fieldTo].Value())); err != nil {
		return 0, 0, 0, fmt.Errorf("target base must be an integer")
	}
	if precision, err = strconv.Atoi(strings.TrimSpace(m.inputs[fieldPrecision].Value())); err != nil {
		return 0, 0, 0, fmt.Errorf("precision must be an integer")
	}
	return from, to, precision, nil
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	m.inputs[m.focus].Focus()
	return m
}
