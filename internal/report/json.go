package report

import (
	"encoding/json"
	"io"
	"slices"
	"time"

	"github.com/fakeyudi/culling-graph/internal/stats"
)

// JSONRenderer renders the stats as indented JSON for use by other tools.
type JSONRenderer struct{}

func (r *JSONRenderer) Ext() string { return ".json" }

type jsonReport struct {
	ID        string      `json:"id"`
	MaxDamage float64     `json:"max_damage"`
	Matches   []jsonMatch `json:"matches"`
}

type jsonMatch struct {
	Number   int                 `json:"number"`
	Start    time.Time           `json:"start"`
	End      *time.Time          `json:"end,omitempty"`
	Duration string              `json:"duration,omitempty"`
	Events   []stats.DamageEvent `json:"events"`
	Totals   []Total             `json:"totals"`
}

func (r *JSONRenderer) Render(w io.Writer, s *stats.Stats) error {
	out := jsonReport{
		ID:        s.ID,
		MaxDamage: s.MaxDamage(),
		Matches:   make([]jsonMatch, 0, s.Len()),
	}
	for i, m := range s.Matches() {
		jm := jsonMatch{
			Number: i + 1,
			Start:  m.Start,
			End:    m.End,
			Events: slices.Collect(m.Events()),
			Totals: SortedTotals(m),
		}
		if jm.Events == nil {
			jm.Events = []stats.DamageEvent{}
		}
		if m.Ended() {
			jm.Duration = m.Duration().String()
		}
		out.Matches = append(out.Matches, jm)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
