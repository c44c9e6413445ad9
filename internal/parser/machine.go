package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fakeyudi/culling-graph/internal/stats"
)

// Message markers. All are case-sensitive prefixes of the message text.
const (
	matchStartPrefix = "LogLevel: ActivateLevel"
	matchEndPrefix   = "LogLoad: LoadMap: CharacterSelect"
)

// Damage amounts and distances must have digits on both sides of the
// decimal point; "12 damage" is not recognized.
var (
	youHitRe   = regexp.MustCompile(`^VictoryDamage:Display: You Hit (.*?) for (\d+\.\d+) damage \((\d+\.\d+) m\)(?:\s+(.*))?`)
	struckByRe = regexp.MustCompile(`^VictoryDamage:Display: Struck by (.*?) for (\d+\.\d+) damage \((\d+\.\d+) m\)(?:\s+(.*))?`)
)

// State is the match-tracking state of a Machine.
type State int

const (
	SeekingMatchStart State = iota
	InMatch
)

func (s State) String() string {
	switch s {
	case SeekingMatchStart:
		return "seeking-match-start"
	case InMatch:
		return "in-match"
	}
	return "unknown"
}

// Event classifies what a fed message did to the model.
type Event int

const (
	EventNone Event = iota
	EventMatchStart
	EventMatchEnd
	EventDamage
)

// Machine segments a stream of (timestamp, message) pairs into matches and
// damage events, recording them in a stats.Stats.
type Machine struct {
	state State
	stats *stats.Stats
}

// NewMachine returns a Machine in the SeekingMatchStart state that records
// into s.
func NewMachine(s *stats.Stats) *Machine {
	return &Machine{state: SeekingMatchStart, stats: s}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Feed processes one message. Messages that mean nothing in the current
// state are ignored and reported as EventNone.
func (m *Machine) Feed(ts time.Time, msg string) (Event, error) {
	switch m.state {
	case SeekingMatchStart:
		if strings.HasPrefix(msg, matchStartPrefix) {
			m.stats.NewMatch(ts)
			m.state = InMatch
			return EventMatchStart, nil
		}
	case InMatch:
		if sm := youHitRe.FindStringSubmatch(msg); sm != nil {
			return m.logDamage(ts, stats.Self, stats.Opponent(sm[1]), sm)
		}
		if sm := struckByRe.FindStringSubmatch(msg); sm != nil {
			return m.logDamage(ts, stats.Opponent(sm[1]), stats.Self, sm)
		}
		if strings.HasPrefix(msg, matchEndPrefix) {
			if err := m.stats.EndMatch(ts); err != nil {
				return EventNone, err
			}
			m.state = SeekingMatchStart
			return EventMatchEnd, nil
		}
		// A new level activation without a CharacterSelect load leaves the
		// previous match open.
		if strings.HasPrefix(msg, matchStartPrefix) {
			m.stats.NewMatch(ts)
			return EventMatchStart, nil
		}
	}
	return EventNone, nil
}

// logDamage records a damage line whose submatches are
// [full, name, amount, distance, annotation].
func (m *Machine) logDamage(ts time.Time, inflictor, receiver stats.Combatant, sm []string) (Event, error) {
	dmg, err := strconv.ParseFloat(sm[2], 64)
	if err != nil {
		return EventNone, err
	}
	mystery, err := strconv.ParseFloat(sm[3], 64)
	if err != nil {
		return EventNone, err
	}
	if err := m.stats.LogDamage(ts, inflictor, receiver, dmg, mystery, sm[4]); err != nil {
		return EventNone, err
	}
	return EventDamage, nil
}
