package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/params"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/resolve"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionConnect
	ActionPrint
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Host   *resolve.Result
}

// hostItem implements list.Item for a resolved host
type hostItem struct {
	result resolve.Result
}

func (i hostItem) Title() string {
	return i.result.Host
}

func (i hostItem) Description() string {
	return describe(i.result)
}

func (i hostItem) FilterValue() string {
	return i.result.Host + " " + i.result.Target()
}

// describe summarizes the target and the parameters most useful at a glance.
func describe(r resolve.Result) string {
	parts := []string{"→ " + r.Target()}

	p := r.Params
	if d, ok := p.ConnectTimeout.Get(); ok {
		parts = append(parts, fmt.Sprintf("timeout %s", d))
	}
	if port, ok := p.RemoteForward.Get(); ok {
		parts = append(parts, fmt.Sprintf("forward %d", port))
	}
	if c, ok := p.Compression.Get(); ok && c {
		parts = append(parts, "compressed")
	}
	if cert, ok := p.CertificateFile.Get(); ok {
		parts = append(parts, "cert "+truncatePath(cert, 30))
	}
	parts = append(parts, fmt.Sprintf("%d/%d set", len(p.Entries()), len(params.Keywords)))

	return strings.Join(parts, " | ")
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the host picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new host picker
func NewPicker(hosts []resolve.Result) Model {
	l := list.New(buildGroupedItems(hosts), newGroupedDelegate(), 80, 20)
	l.Title = "forage-ssh - Select Host"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	skipHeaders(&l, 1)

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			return m.choose(ActionConnect)
		case "p":
			return m.choose(ActionPrint)
		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if isHeaderSelected(&m.list) {
			skipHeaders(&m.list, navigationDirection(msg))
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) choose(action Action) (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(hostItem)
	if !ok {
		return m, nil
	}
	r := item.result
	m.result = PickerResult{Action: action, Host: &r}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Connect  [p] Print params  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive host picker
func RunPicker(hosts []resolve.Result) (PickerResult, error) {
	if len(hosts) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	p := tea.NewProgram(NewPicker(hosts), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive listing of the hosts, used when no
// terminal is attached.
func SimplePicker(hosts []resolve.Result) string {
	var sb strings.Builder

	sb.WriteString("forage-ssh - Hosts\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(hosts) == 0 {
		sb.WriteString("No hosts found.\n")
		sb.WriteString("Add a literal Host entry to your ssh config to list it here.\n")
		return sb.String()
	}

	for i, h := range hosts {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, h.Host)
		fmt.Fprintf(&sb, "   %s\n\n", describe(h))
	}

	return sb.String()
}
