// Package report renders parsed match statistics for viewing.
package report

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/fakeyudi/culling-graph/internal/stats"
)

// BarWidthMax is the pixel width of the bar for the largest hit in a log.
const BarWidthMax = 600

// Renderer writes a complete report for s to w.
type Renderer interface {
	Render(w io.Writer, s *stats.Stats) error
	// Ext is the file extension for the rendered format, including the dot.
	Ext() string
}

// ForFormat returns the renderer for "html" or "json". The empty string
// selects HTML.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", "html":
		return NewHTMLRenderer()
	case "json":
		return &JSONRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}

// FileName returns the report file name for a log whose last parsed line
// was stamped last.
func FileName(last time.Time, ext string) string {
	return "culling-damage-" + last.Format("2006-01-02-15-04-05") + ext
}

// WriteFile renders s into the file at path, replacing any existing file.
func WriteFile(r Renderer, path string, s *stats.Stats) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := r.Render(bw, s); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Row is one damage event prepared for display.
type Row struct {
	Event stats.DamageEvent
	// Clock is the time since match start, "15:04:05.000".
	Clock string
	// Total is the inflictor's running damage total in this match,
	// including this event.
	Total float64
	// BarWidth is the event's bar length in pixels.
	BarWidth float64
}

// Rows walks a match in log order and computes the display values for each
// event. maxDamage should be the largest hit across the whole log so bars
// are comparable between matches.
func Rows(m *stats.Match, maxDamage float64) []Row {
	totals := make(map[stats.Combatant]float64)
	rows := make([]Row, 0, m.Len())
	for ev := range m.Events() {
		totals[ev.Inflictor] += ev.Damage
		rows = append(rows, Row{
			Event:    ev,
			Clock:    Clock(m.Start, ev.Timestamp),
			Total:    totals[ev.Inflictor],
			BarWidth: BarWidth(ev.Damage, maxDamage),
		})
	}
	return rows
}

// BarWidth scales dmg against maxDamage to at most BarWidthMax pixels. It
// returns 0 when maxDamage is not positive.
func BarWidth(dmg, maxDamage float64) float64 {
	if maxDamage <= 0 {
		return 0
	}
	return BarWidthMax * (dmg / maxDamage)
}

var epoch = time.Unix(0, 0).UTC()

// Clock formats the offset of ts from start as a wall-clock time of day.
func Clock(start, ts time.Time) string {
	return epoch.Add(ts.Sub(start)).Format("15:04:05.000")
}

// Total is one inflictor's damage over a whole match.
type Total struct {
	Combatant stats.Combatant `json:"combatant"`
	Damage    float64         `json:"damage"`
}

// SortedTotals returns a match's per-inflictor totals, highest first. Ties
// put the observing player first, then order by name.
func SortedTotals(m *stats.Match) []Total {
	totals := m.Totals()
	out := make([]Total, 0, len(totals))
	for c, d := range totals {
		out = append(out, Total{Combatant: c, Damage: d})
	}
	slices.SortFunc(out, func(a, b Total) int {
		if c := cmp.Compare(b.Damage, a.Damage); c != 0 {
			return c
		}
		if a.Combatant.IsSelf != b.Combatant.IsSelf {
			if a.Combatant.IsSelf {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Combatant.Name, b.Combatant.Name)
	})
	return out
}
