package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/fakeyudi/culling-graph/internal/stats"
)

// HTMLRenderer renders a static HTML page with one table per match.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the page templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("report").Parse(htmlTemplateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (r *HTMLRenderer) Ext() string { return ".html" }

type headView struct {
	ReportID string
}

type matchView struct {
	Num         int
	Start       string
	BarWidthMax int
	Rows        []rowView
}

type rowView struct {
	Clock      string
	Inflictor  string
	Receiver   string
	Damage     string
	Total      string
	BarWidth   string
	Annotation string
	InfClass   string
	RecClass   string
}

// Render streams the document to w one match at a time. The bar scale is
// taken from the largest hit in the whole log.
func (r *HTMLRenderer) Render(w io.Writer, s *stats.Stats) error {
	if err := r.tmpl.ExecuteTemplate(w, "head", headView{ReportID: s.ID}); err != nil {
		return err
	}

	maxDamage := s.MaxDamage()
	for i, m := range s.Matches() {
		if err := r.tmpl.ExecuteTemplate(w, "match", newMatchView(i, m, maxDamage)); err != nil {
			return fmt.Errorf("match %d: %w", i+1, err)
		}
	}

	return r.tmpl.ExecuteTemplate(w, "tail", nil)
}

func newMatchView(i int, m *stats.Match, maxDamage float64) matchView {
	rows := Rows(m, maxDamage)
	mv := matchView{
		Num:         i + 1,
		Start:       m.Start.Format("Monday 2006-01-02 15:04:05"),
		BarWidthMax: BarWidthMax,
		Rows:        make([]rowView, len(rows)),
	}
	for j, row := range rows {
		ev := row.Event
		infClass, recClass := "opp", "self"
		if ev.Inflictor.IsSelf {
			infClass, recClass = "self", "opp"
		}
		mv.Rows[j] = rowView{
			Clock:      row.Clock,
			Inflictor:  ev.Inflictor.String(),
			Receiver:   ev.Receiver.String(),
			Damage:     fmt.Sprintf("%4.2f", ev.Damage),
			Total:      fmt.Sprintf("%4.2f", row.Total),
			BarWidth:   fmt.Sprintf("%.2f", row.BarWidth),
			Annotation: ev.Annotation,
			InfClass:   infClass,
			RecClass:   recClass,
		}
	}
	return mv
}
