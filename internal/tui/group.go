package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ssh/internal/resolve"
)

// ungrouped labels hosts that share no wildcard rule with other hosts.
const ungrouped = "other hosts"

// headerItem is a non-selectable group separator in the picker list.
type headerItem struct {
	label string
}

func (h headerItem) FilterValue() string { return "" }
func (h headerItem) Title() string       { return h.label }
func (h headerItem) Description() string { return "" }

// groupKey returns the most specific wildcard rule that applies to the host,
// ignoring the catch-all "*".
func groupKey(r resolve.Result) string {
	for i := len(r.Layers) - 1; i >= 0; i-- {
		p := r.Layers[i].Patterns
		if p == "*" || !strings.ContainsAny(p, "*?") {
			continue
		}
		return "Host " + p
	}
	return ungrouped
}

// buildGroupedItems groups hosts by wildcard rule and returns list items
// with headerItem separators. The ungrouped section always comes last.
func buildGroupedItems(hosts []resolve.Result) []list.Item {
	if len(hosts) == 0 {
		return nil
	}

	type group struct {
		key   string
		hosts []resolve.Result
	}
	groupMap := make(map[string]*group)
	for _, h := range hosts {
		key := groupKey(h)
		g, ok := groupMap[key]
		if !ok {
			g = &group{key: key}
			groupMap[key] = g
		}
		g.hosts = append(g.hosts, h)
	}

	groups := make([]*group, 0, len(groupMap))
	for _, g := range groupMap {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if (groups[i].key == ungrouped) != (groups[j].key == ungrouped) {
			return groups[j].key == ungrouped
		}
		return groups[i].key < groups[j].key
	})

	var items []list.Item
	for _, g := range groups {
		items = append(items, headerItem{label: g.key})
		for _, h := range g.hosts {
			items = append(items, hostItem{result: h})
		}
	}
	return items
}

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("241")).
	PaddingLeft(2)

// groupedDelegate renders both headerItem and hostItem in the picker list.
type groupedDelegate struct {
	inner list.DefaultDelegate
}

func newGroupedDelegate() groupedDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return groupedDelegate{inner: delegate}
}

func (d groupedDelegate) Height() int                             { return d.inner.Height() }
func (d groupedDelegate) Spacing() int                            { return d.inner.Spacing() }
func (d groupedDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d groupedDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if h, ok := item.(headerItem); ok {
		fmt.Fprint(w, headerStyle.Render(h.label))
		return
	}
	d.inner.Render(w, m, index, item)
}

// skipHeaders moves the cursor off a headerItem.
// direction should be 1 (down) or -1 (up).
func skipHeaders(l *list.Model, direction int) {
	items := l.Items()
	if len(items) == 0 {
		return
	}

	idx := l.Index()
	if _, ok := items[idx].(headerItem); !ok {
		return
	}

	next := idx + direction
	if next >= 0 && next < len(items) {
		if _, ok := items[next].(headerItem); !ok {
			l.Select(next)
			return
		}
	}

	opposite := idx - direction
	if opposite >= 0 && opposite < len(items) {
		if _, ok := items[opposite].(headerItem); !ok {
			l.Select(opposite)
			return
		}
	}

	for i := 0; i < len(items); i++ {
		candidate := (idx + i*direction + len(items)) % len(items)
		if _, ok := items[candidate].(headerItem); !ok {
			l.Select(candidate)
			return
		}
	}
}

func isHeaderSelected(l *list.Model) bool {
	if item := l.SelectedItem(); item != nil {
		_, ok := item.(headerItem)
		return ok
	}
	return false
}

// navigationDirection returns 1 for down/j keys, -1 for up/k keys.
func navigationDirection(msg tea.KeyMsg) int {
	switch msg.String() {
	case "up", "k":
		return -1
	default:
		return 1
	}
}
