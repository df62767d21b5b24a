package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// inputKeyMap defines the key bindings for the guess input.
type inputKeyMap struct {
	Submit key.Binding
	Abort  key.Binding
}

func defaultInputKeyMap() inputKeyMap {
	return inputKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// inputModel is a one-shot Bubble Tea model asking for a single value.
type inputModel struct {
	label   string
	input   textinput.Model
	keys    inputKeyMap
	value   string
	done    bool
	aborted bool
}

func newInputModel(label string) inputModel {
	ti := textinput.New()
	ti.Prompt = labelStyle.Render(label)
	ti.CharLimit = 12
	ti.Width = 12
	ti.Focus()

	return inputModel{
		label: label,
		input: ti,
		keys:  defaultInputKeyMap(),
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	switch {
	case m.aborted:
		return ""
	case m.done:
		return m.label + m.value + "\n"
	}
	return m.input.View() + "\n" + hintStyle.Render("enter: submit  esc: quit") + "\n"
}

// Tea runs a small Bubble Tea program per prompt. A terminal file is handed
// to each program directly; any other stream is read by a single pump that
// outlives the programs, so keys typed between prompts are kept.
type Tea struct {
	file *os.File
	pump *inputPump
	out  io.Writer
	opts []tea.ProgramOption
}

// NewTea creates a prompter reading keys from in and drawing to out.
func NewTea(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *Tea {
	t := &Tea{out: out, opts: opts}
	if f, ok := in.(*os.File); ok {
		t.file = f
	} else {
		t.pump = newInputPump(in)
	}
	return t
}

// Prompt runs the input program until the user submits or aborts.
func (t *Tea) Prompt(ctx context.Context, label string) (string, error) {
	var in io.Reader = t.file
	if t.pump != nil {
		r := t.pump.reader()
		defer r.Close()
		in = r
	}

	opts := make([]tea.ProgramOption, 0, len(t.opts)+3)
	opts = append(opts, t.opts...)
	opts = append(opts,
		tea.WithInput(in),
		tea.WithOutput(t.out),
		tea.WithContext(ctx),
	)

	final, err := tea.NewProgram(newInputModel(label), opts...).Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("prompt: input program failed: %w", err)
	}

	m, ok := final.(inputModel)
	if !ok || m.aborted {
		return "", ErrAborted
	}
	return m.value, nil
}

// Close stops the input pump, if any.
func (t *Tea) Close() error {
	if t.pump != nil {
		t.pump.close()
	}
	return nil
}

var _ Prompter = (*Tea)(nil)
