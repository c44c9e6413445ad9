// Package tui provides a Bubble Tea browser for parsed match statistics.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fakeyudi/culling-graph/internal/report"
	"github.com/fakeyudi/culling-graph/internal/stats"
)

// ── Styles ────────────

var (
	// Title bar at the very top
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("52")).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("52")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Background(lipgloss.Color("235"))

	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	// Same accents as the HTML report: #57F for self, #F75 for opponents.
	selfStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5577FF"))
	oppStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF7755"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)

// ── Model ────────────────────

// Model is the root Bubble Tea model. Tab 0 is an overview of all matches;
// tab i shows match i.
type Model struct {
	stats     *stats.Stats
	matches   []*stats.Match
	maxDamage float64
	filename  string
	activeTab int
	viewports []viewport.Model
	width     int
	height    int
	ready     bool
}

// New creates a TUI model for s, parsed from the log at filename.
func New(s *stats.Stats, filename string) Model {
	m := Model{
		stats:     s,
		maxDamage: s.MaxDamage(),
		filename:  filepath.Base(filename),
	}
	for _, match := range s.Matches() {
		m.matches = append(m.matches, match)
	}
	return m
}

func (m Model) tabCount() int { return len(m.matches) + 1 }

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "l", "right":
			m.activeTab = (m.activeTab + 1) % m.tabCount()
			return m, nil
		case "shift+tab", "h", "left":
			m.activeTab = (m.activeTab - 1 + m.tabCount()) % m.tabCount()
			return m, nil
		case "home":
			m.activeTab = 0
			return m, nil
		}
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.initViewports()
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render("  culling-graph  " + m.filename)

	var tabParts []string
	for i := 0; i < m.tabCount(); i++ {
		label := " Overview "
		if i > 0 {
			label = fmt.Sprintf(" Match %d ", i)
		}
		if i == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
		if i < m.tabCount()-1 {
			tabParts = append(tabParts, tabSepStyle.Render("│"))
		}
	}
	tabRow := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Width(m.width).
		MaxWidth(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabParts...))

	content := m.viewports[m.activeTab].View()

	hint := "  ←/→ match  ↑/↓ scroll  home overview  q quit"
	pct := fmt.Sprintf("%3.0f%%", m.viewports[m.activeTab].ScrollPercent()*100)
	pad := m.width - lipgloss.Width(hint) - len(pct) - 2
	if pad < 1 {
		pad = 1
	}
	statusBar := statusBarStyle.Width(m.width).Render(
		hint + strings.Repeat(" ", pad) + pct,
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabRow, content, statusBar)
}

// ── Viewport management ───────────────────────────────────────────────────────

func (m *Model) initViewports() {
	// title(1) + tabRow(1) + statusBar(1) = 3 fixed rows
	vpHeight := m.height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewports = make([]viewport.Model, m.tabCount())
	for i := range m.viewports {
		vp := viewport.New(m.width, vpHeight)
		vp.SetContent(m.renderTab(i))
		m.viewports[i] = vp
	}
}

// ── Tab renderers ─────────────────────────────────────────────────────────────

func (m *Model) renderTab(i int) string {
	if i == 0 {
		return m.renderOverview()
	}
	return m.renderMatch(i, m.matches[i-1])
}

func heading(s string) string {
	return "\n" + sectionHeader.Render("  "+s) + "\n\n"
}

func combatantStyle(c stats.Combatant) lipgloss.Style {
	if c.IsSelf {
		return selfStyle
	}
	return oppStyle
}

func (m *Model) renderOverview() string {
	var sb strings.Builder
	sb.WriteString(heading(fmt.Sprintf("Matches (%d)", len(m.matches))))

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  %-14s", label)) + "  " + value + "\n")
	}
	row("Report:", m.stats.ID)
	row("Biggest hit:", fmt.Sprintf("%.2f", m.maxDamage))
	sb.WriteString("\n")

	for i, match := range m.matches {
		end := dimStyle.Render("(no end)")
		if match.Ended() {
			end = match.Duration().String()
		}
		dealt, taken := 0.0, 0.0
		for _, t := range report.SortedTotals(match) {
			if t.Combatant.IsSelf {
				dealt += t.Damage
			} else {
				taken += t.Damage
			}
		}
		sb.WriteString(fmt.Sprintf("  %s  %s  %-10s  %s  %s  %s\n",
			labelStyle.Render(fmt.Sprintf("#%-3d", i+1)),
			timeStyle.Render(match.Start.Format("Mon 2006-01-02 15:04:05")),
			end,
			dimStyle.Render(fmt.Sprintf("%3d hits", match.Len())),
			selfStyle.Render(fmt.Sprintf("dealt %8.2f", dealt)),
			oppStyle.Render(fmt.Sprintf("taken %8.2f", taken)),
		))
	}
	return sb.String()
}

func (m *Model) renderMatch(num int, match *stats.Match) string {
	var sb strings.Builder
	sb.WriteString(heading(fmt.Sprintf("Match %d @ %s", num, match.Start.Format("Monday 2006-01-02 15:04:05"))))

	rows := report.Rows(match, m.maxDamage)
	if len(rows) == 0 {
		sb.WriteString(dimStyle.Render("  (no damage recorded)") + "\n")
		return sb.String()
	}

	// The bar column gets whatever the fixed columns leave over.
	barMax := m.width - 80
	if barMax < 10 {
		barMax = 10
	}
	for _, r := range rows {
		ev := r.Event
		inf := combatantStyle(ev.Inflictor)
		rec := combatantStyle(ev.Receiver)
		bar := strings.Repeat("█", int(r.BarWidth/report.BarWidthMax*float64(barMax)))
		sb.WriteString(fmt.Sprintf("  %s  %s  %s  %s  %s  %s %s\n",
			timeStyle.Render(r.Clock),
			inf.Render(fmt.Sprintf("%-16.16s", ev.Inflictor)),
			rec.Render(fmt.Sprintf("%-16.16s", ev.Receiver)),
			inf.Render(fmt.Sprintf("%7.2f", ev.Damage)),
			inf.Render(fmt.Sprintf("(%8.2f)", r.Total)),
			inf.Render(bar),
			dimStyle.Render(ev.Annotation),
		))
	}

	sb.WriteString(heading("Totals"))
	for _, t := range report.SortedTotals(match) {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			combatantStyle(t.Combatant).Render(fmt.Sprintf("%-16.16s", t.Combatant)),
			fmt.Sprintf("%8.2f", t.Damage),
		))
	}
	return sb.String()
}

// Run starts the TUI program for s.
func Run(s *stats.Stats, filename string) error {
	p := tea.NewProgram(New(s, filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
