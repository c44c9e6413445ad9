// Package stats holds the per-match damage model built while parsing a
// Culling log. A Stats value is mutated only by the parser and is treated as
// read-only once parsing completes.
package stats

import (
	"errors"
	"iter"
	"time"

	"github.com/google/uuid"
)

// ErrNoCurrentMatch is returned when damage or a match end is logged before
// any match has been started.
var ErrNoCurrentMatch = errors.New("no current match")

// ErrMatchEnded is returned when damage is logged against a match whose end
// time is already set.
var ErrMatchEnded = errors.New("current match already ended")

// Combatant identifies one side of a damage event: either a named opponent
// or the observing player.
type Combatant struct {
	Name   string `json:"name,omitempty"`
	IsSelf bool   `json:"self,omitempty"`
}

// Self is the observing player. It never compares equal to an opponent,
// including one whose name is empty or "self".
var Self = Combatant{IsSelf: true}

// Opponent returns the combatant for a named player.
func Opponent(name string) Combatant {
	return Combatant{Name: name}
}

func (c Combatant) String() string {
	if c.IsSelf {
		return "self"
	}
	return c.Name
}

// DamageEvent is a single recognized hit.
type DamageEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	Inflictor  Combatant `json:"inflictor"`
	Receiver   Combatant `json:"receiver"`
	Damage     float64   `json:"damage"`
	Mystery    float64   `json:"mystery"` // distance in metres; carried but unused
	Annotation string    `json:"annotation,omitempty"`
}

// Match is one gameplay session, from level activation to the return to
// character selection.
type Match struct {
	Start  time.Time
	End    *time.Time // nil while the match is open
	events []DamageEvent
}

// Events yields the match's damage events in log order.
func (m *Match) Events() iter.Seq[DamageEvent] {
	return func(yield func(DamageEvent) bool) {
		for _, ev := range m.events {
			if !yield(ev) {
				return
			}
		}
	}
}

// Len returns the number of damage events recorded for the match.
func (m *Match) Len() int { return len(m.events) }

// Ended reports whether the match end was observed.
func (m *Match) Ended() bool { return m.End != nil }

// Duration returns the time between match start and end, or zero when the
// match was never closed.
func (m *Match) Duration() time.Duration {
	if m.End == nil {
		return 0
	}
	return m.End.Sub(m.Start)
}

// MaxDamage returns the largest single hit in the match, or 0.
func (m *Match) MaxDamage() float64 {
	maxd := 0.0
	for _, ev := range m.events {
		if ev.Damage > maxd {
			maxd = ev.Damage
		}
	}
	return maxd
}

// Totals returns the final damage sum per inflictor.
func (m *Match) Totals() map[Combatant]float64 {
	totals := make(map[Combatant]float64)
	for _, ev := range m.events {
		totals[ev.Inflictor] += ev.Damage
	}
	return totals
}

// Stats is the ordered collection of matches found in one log.
type Stats struct {
	ID      string
	matches []*Match
}

// New returns an empty Stats with a fresh report ID.
func New() *Stats {
	return &Stats{ID: uuid.NewString()}
}

// NewMatch appends a match starting at ts. It becomes the current match.
func (s *Stats) NewMatch(ts time.Time) *Match {
	m := &Match{Start: ts}
	s.matches = append(s.matches, m)
	return m
}

// Current returns the most recently started match, or nil.
func (s *Stats) Current() *Match {
	if len(s.matches) == 0 {
		return nil
	}
	return s.matches[len(s.matches)-1]
}

// LogDamage records a hit against the current match.
func (s *Stats) LogDamage(ts time.Time, inflictor, receiver Combatant, dmg, mystery float64, annotation string) error {
	m := s.Current()
	if m == nil {
		return ErrNoCurrentMatch
	}
	if m.End != nil {
		return ErrMatchEnded
	}
	m.events = append(m.events, DamageEvent{
		Timestamp:  ts,
		Inflictor:  inflictor,
		Receiver:   receiver,
		Damage:     dmg,
		Mystery:    mystery,
		Annotation: annotation,
	})
	return nil
}

// EndMatch sets the end time of the current match.
func (s *Stats) EndMatch(ts time.Time) error {
	m := s.Current()
	if m == nil {
		return ErrNoCurrentMatch
	}
	m.End = &ts
	return nil
}

// Len returns the number of matches.
func (s *Stats) Len() int { return len(s.matches) }

// Matches yields each match with its zero-based index, in log order.
func (s *Stats) Matches() iter.Seq2[int, *Match] {
	return func(yield func(int, *Match) bool) {
		for i, m := range s.matches {
			if !yield(i, m) {
				return
			}
		}
	}
}

// MaxDamage scans every event of every match and returns the largest hit,
// or 0 when there are none.
func (s *Stats) MaxDamage() float64 {
	maxd := 0.0
	for _, m := range s.matches {
		if d := m.MaxDamage(); d > maxd {
			maxd = d
		}
	}
	return maxd
}
