// Package tui is the interactive control surface: adjust the dawn strength
// and weekly-drug dose, add or remove insulin doses, and watch the simulated
// day update.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/glucosim/internal/config"
	"github.com/san-kum/glucosim/internal/effects"
	"github.com/san-kum/glucosim/internal/glucose"
	"github.com/san-kum/glucosim/internal/metrics"
	"github.com/san-kum/glucosim/internal/schedule"
	"github.com/san-kum/glucosim/internal/sim"
	"github.com/san-kum/glucosim/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type uiState int

const (
	stateView uiState = iota
	stateAdd
)

var formFields = []string{"kind", "time", "amount"}

type model struct {
	state uiState

	simCfg  sim.Config
	sched   *schedule.Schedule
	series  glucose.Series
	summary metrics.Summary
	simErr  error

	cursor int // selected dose in the list

	formField  int
	formKind   glucose.DoseKind
	formHour   int
	formAmount float64

	width  int
	height int
}

// NewApp builds the TUI from a day scenario and runs the first simulation.
func NewApp(cfg *config.Config) (model, error) {
	sched, err := cfg.Schedule()
	if err != nil {
		return model{}, err
	}
	m := model{
		simCfg:     cfg.SimConfig(),
		sched:      sched,
		formKind:   glucose.Rapid,
		formHour:   7,
		formAmount: 6,
		width:      80,
		height:     24,
	}
	m.resimulate()
	return m, nil
}

// Run starts the interactive program and blocks until the user quits.
func Run(cfg *config.Config) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateView:
		return m.viewKey(msg)
	case stateAdd:
		return m.addKey(msg)
	}
	return m, nil
}

func (m model) viewKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.sched.Len()-1 {
			m.cursor++
		}
	case "a":
		m.state = stateAdd
		m.formField = 0
	case "d", "x":
		if m.sched.Len() > 0 {
			if err := m.sched.Remove(m.cursor); err == nil {
				if m.cursor >= m.sched.Len() && m.cursor > 0 {
					m.cursor--
				}
				m.resimulate()
			}
		}
	case "left", "h":
		m.simCfg.Dawn.Strength = clamp(m.simCfg.Dawn.Strength-1,
			effects.MinDawnStrength, effects.MaxDawnStrength)
		m.resimulate()
	case "right", "l":
		m.simCfg.Dawn.Strength = clamp(m.simCfg.Dawn.Strength+1,
			effects.MinDawnStrength, effects.MaxDawnStrength)
		m.resimulate()
	case "[":
		m.simCfg.Drug.Dose = clamp(m.simCfg.Drug.Dose-0.1, 0, effects.MaxDrugDose)
		m.resimulate()
	case "]":
		m.simCfg.Drug.Dose = clamp(m.simCfg.Drug.Dose+0.1, 0, effects.MaxDrugDose)
		m.resimulate()
	case "r":
		// New day-to-day draw for the dawn jitter.
		m.simCfg.Seed++
		m.resimulate()
	}
	return m, nil
}

func (m model) addKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = stateView
	case "up", "k":
		if m.formField > 0 {
			m.formField--
		}
	case "down", "j", "tab":
		if m.formField < len(formFields)-1 {
			m.formField++
		}
	case "left", "h":
		m.adjustForm(-1)
	case "right", "l":
		m.adjustForm(1)
	case "enter":
		if err := m.sched.Add(m.formHour*60, m.formAmount, m.formKind); err == nil {
			m.state = stateView
			m.resimulate()
		}
	}
	return m, nil
}

func (m *model) adjustForm(dir int) {
	switch formFields[m.formField] {
	case "kind":
		if m.formKind == glucose.Rapid {
			m.formKind = glucose.Basal
		} else {
			m.formKind = glucose.Rapid
		}
	case "time":
		m.formHour = (m.formHour + dir + 24) % 24
	case "amount":
		m.formAmount = clamp(m.formAmount+0.5*float64(dir), 0, 50)
	}
}

func (m *model) resimulate() {
	series, err := sim.New(m.simCfg).Run(m.sched)
	m.simErr = err
	if err != nil {
		return
	}
	m.series = series
	m.summary = metrics.Summarize(series)
}

func (m model) View() string {
	switch m.state {
	case stateAdd:
		return m.viewAdd()
	default:
		return m.viewDay()
	}
}

func (m model) viewDay() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("         " + cyan.Render("g l u c o s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	chartWidth := m.width - 16
	if chartWidth < 50 {
		chartWidth = 50
	}
	b.WriteString(viz.Chart(m.series, chartWidth, 10))
	b.WriteString("\n")

	b.WriteString("   " + dim.Render("dawn strength ") +
		magenta.Render(fmt.Sprintf("%4.0f mg/dL", m.simCfg.Dawn.Strength)) +
		dim.Render("   weekly drug ") +
		magenta.Render(fmt.Sprintf("%4.1f", m.simCfg.Drug.Dose)) + "\n\n")

	b.WriteString("   " + cyan.Render("insulin doses") + "\n")
	doses := m.sched.Doses()
	if len(doses) == 0 {
		b.WriteString("     " + dimmer.Render("none scheduled") + "\n")
	}
	for i, d := range doses {
		line := fmt.Sprintf("%-6s %s  %5.1fu", d.Kind, minuteClock(d.Time), d.Amount)
		if i == m.cursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(line) + "\n")
		} else {
			b.WriteString("     " + dim.Render(line) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(viz.Report(m.summary))

	if m.simErr != nil {
		b.WriteString("\n   " + red.Render(m.simErr.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("   ↑↓ select  a add  d delete  ←→ dawn  [ ] drug  r reroll  q quit") + "\n")
	return b.String()
}

func (m model) viewAdd() string {
	var b strings.Builder

	b.WriteString("\n      " + cyan.Render("add insulin dose") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 28)) + "\n\n")

	values := []string{
		string(m.formKind),
		minuteClock(m.formHour * 60),
		fmt.Sprintf("%.1fu", m.formAmount),
	}
	for i, name := range formFields {
		if i == m.formField {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-8s", name)) +
				magenta.Render(values[i]) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-8s", name)) + dim.Render(values[i]) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ field  ←→ change  enter add  esc cancel") + "\n")
	return b.String()
}

func minuteClock(t int) string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
