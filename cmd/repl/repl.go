package repl

import (
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/ditdah/cmd/common"
	"github.com/gigurra/ditdah/pkg/morse"
	"github.com/spf13/cobra"
)

type Params struct{}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "repl",
		Short:       "Interactive Morse translator",
		Long:        "A menu-driven translator: pick a direction, type a line, read the result. Esc returns to the menu, q quits.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
				fmt.Fprintf(os.Stderr, "repl: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	diagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type mode int

const (
	modeMenu mode = iota
	modeEncode
	modeDecode
)

var menuItems = []struct {
	label string
	mode  mode
}{
	{"Encode text to Morse code", modeEncode},
	{"Decode Morse code to text", modeDecode},
}

type model struct {
	mode   mode
	cursor int
	input  textinput.Model
	result string
	diags  []error
	trie   *morse.Trie
}

func initialModel() model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 60
	return model{
		mode:  modeMenu,
		input: ti,
		trie:  morse.NewTrie(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m.updateInput(msg)
	}

	if m.mode == modeMenu {
		return m.updateMenu(keyMsg)
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeMenu
		m.result = ""
		m.diags = nil
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		m = m.translate()
		m.input.Reset()
		return m, nil
	}
	return m.updateInput(msg)
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		m.mode = menuItems[m.cursor].mode
		m.result = ""
		m.diags = nil
		if m.mode == modeEncode {
			m.input.Placeholder = "HELLO WORLD"
		} else {
			m.input.Placeholder = ".... . .-.. .-.. ---   .-- --- .-. .-.. -.."
		}
		m.input.Focus()
	}
	return m, nil
}

func (m model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) translate() model {
	line := m.input.Value()
	m.diags = nil
	if m.mode == modeEncode {
		m.result = morse.Encode(line)
	} else {
		m.result, m.diags = m.trie.Decode(line)
	}
	return m
}

func (m model) View() string {
	s := titleStyle.Render("ditdah — Morse translator") + "\n\n"

	if m.mode == modeMenu {
		for i, item := range menuItems {
			line := "  " + item.label
			if i == m.cursor {
				line = selectedStyle.Render("> " + item.label)
			}
			s += line + "\n"
		}
		s += "\n" + helpStyle.Render("↑/↓: select | enter: choose | q: quit")
		return s
	}

	if m.mode == modeEncode {
		s += "Text to encode:\n"
	} else {
		s += "Morse code to decode (single space between characters, triple between words):\n"
	}
	s += m.input.View() + "\n\n"

	if m.result != "" {
		s += resultStyle.Render(m.result) + "\n"
	}
	for _, diag := range m.diags {
		s += diagStyle.Render(diag.Error()) + "\n"
	}

	s += "\n" + helpStyle.Render("enter: translate | esc: menu | ctrl+c: quit")
	return s
}
