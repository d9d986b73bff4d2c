package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/lvsim/internal/analysis"
	"github.com/san-kum/lvsim/internal/compare"
	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/validate"
)

// Explorer is a Bubble Tea model that reruns the Euler/RK4 comparison as
// the step size and step count change.
type Explorer struct {
	prm    lotka.Params
	p0, d0 float64
	h      float64
	steps  int
	limits validate.Limits

	cmp *compare.Comparison
	err error

	offset        int
	phase         bool
	width, height int
}

func NewExplorer(prm lotka.Params, p0, d0, h float64, steps int, limits validate.Limits) Explorer {
	e := Explorer{
		prm:    prm,
		p0:     p0,
		d0:     d0,
		h:      h,
		steps:  max(steps, 1),
		limits: limits,
		width:  100,
		height: 30,
	}
	e.recompute()
	return e
}

func (e *Explorer) recompute() {
	e.cmp = nil
	if err := e.limits.CheckSteps(e.h, e.steps); err != nil {
		e.err = err
		return
	}
	e.cmp, e.err = compare.RunStepsWith(e.prm, e.p0, e.d0, e.h, e.steps,
		compare.Options{MaxSteps: e.limits.MaxSteps()})
	e.clampOffset()
}

func (e *Explorer) visibleRows() int {
	return max(e.height-12, 5)
}

func (e *Explorer) clampOffset() {
	if e.cmp == nil {
		e.offset = 0
		return
	}
	e.offset = max(0, min(e.offset, e.cmp.Len()-e.visibleRows()))
}

func (e Explorer) H() float64                      { return e.h }
func (e Explorer) Steps() int                      { return e.steps }
func (e Explorer) Offset() int                     { return e.offset }
func (e Explorer) Comparison() *compare.Comparison { return e.cmp }
func (e Explorer) Err() error                      { return e.err }

func (e Explorer) Init() tea.Cmd { return nil }

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width, e.height = msg.Width, msg.Height
		e.clampOffset()
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e Explorer) handleKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return e, tea.Quit
	case "down", "j":
		e.offset++
		e.clampOffset()
	case "up", "k":
		e.offset--
		e.clampOffset()
	case "g", "home":
		e.offset = 0
	case "G", "end":
		e.offset = 1 << 30
		e.clampOffset()
	case "[":
		e.h /= 2
		e.recompute()
	case "]":
		e.h *= 2
		e.recompute()
	case "-":
		if e.steps > 1 {
			e.steps--
			e.recompute()
		}
	case "+", "=":
		e.steps++
		e.recompute()
	case "p":
		e.phase = !e.phase
	}
	return e, nil
}

func (e Explorer) View() string {
	var b strings.Builder

	b.WriteString(Title.Render("LOTKA-VOLTERRA  euler vs rk4"))
	b.WriteString("\n")
	b.WriteString(Subtle.Render(fmt.Sprintf("alpha=%g beta=%g delta=%g gamma=%g  P0=%g D0=%g",
		e.prm.Alpha, e.prm.Beta, e.prm.Delta, e.prm.Gamma, e.p0, e.d0)))
	b.WriteString("\n")
	b.WriteString(MetricLabel.Render("h "))
	b.WriteString(MetricValue.Render(fmt.Sprintf("%g", e.h)))
	b.WriteString(MetricLabel.Render("  steps "))
	b.WriteString(MetricValue.Render(fmt.Sprintf("%d", e.steps)))
	b.WriteString(MetricLabel.Render("  t_max "))
	b.WriteString(MetricValue.Render(fmt.Sprintf("%g", e.h*float64(e.steps))))
	b.WriteString("\n\n")

	switch {
	case e.err != nil:
		b.WriteString(ErrorText.Render(e.err.Error()))
		b.WriteString("\n")
	case e.phase:
		b.WriteString(e.viewPhase())
	default:
		b.WriteString(e.viewTable())
	}

	b.WriteString("\n")
	b.WriteString(KeyBar("j/k", "scroll", "[/]", "h", "-/+", "steps", "p", "phase", "q", "quit"))
	b.WriteString("\n")
	return b.String()
}

func (e Explorer) viewTable() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(TableHeader()))
	b.WriteString("\n")
	for _, line := range ComparisonRows(e.cmp, e.offset, e.visibleRows()) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	final := e.cmp.Final()
	b.WriteString("\n")
	b.WriteString(MetricLabel.Render("diff P "))
	b.WriteString(BandStyle(final.Band).Render(Sparkline(e.cmp.DiffP, 40)))
	b.WriteString(MetricLabel.Render("  final "))
	b.WriteString(BandStyle(final.Band).Render(fmt.Sprintf("%.4f / %.4f (%s)", final.DiffP, final.DiffD, final.Band)))
	b.WriteString("\n")
	return b.String()
}

func (e Explorer) viewPhase() string {
	portrait := analysis.NewPhasePortrait(e.prm, e.cmp.Euler, e.cmp.RK4)
	w := max(e.width-4, 20)
	h := max(e.height-10, 6)
	return Panel.Render(PlotPhase(portrait, w, h)) + "\n" +
		Subtle.Render("euler and rk4 orbits in the (P, D) plane, + marks the equilibrium") + "\n"
}

// RunExplorer starts the explorer in the alternate screen and blocks until
// the user quits.
func RunExplorer(e Explorer) error {
	_, err := tea.NewProgram(e, tea.WithAltScreen()).Run()
	return err
}
