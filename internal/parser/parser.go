// Package parser reads a Culling Victory.log and builds per-match damage
// statistics from it.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fakeyudi/culling-graph/internal/stats"
)

// ErrNoMatches is returned by callers when a log parsed cleanly but
// contained no level activation.
var ErrNoMatches = errors.New("no match data found")

// Result summarizes one parse run.
type Result struct {
	TotalLines   int
	ParsedLines  int // lines carrying a valid timestamp
	SkippedLines int // lines without one
	Matches      int
	Events       int
	// LastTimestamp is the timestamp of the last parsed line, or the Unix
	// epoch when no line parsed.
	LastTimestamp time.Time
	// ReadErr is set when reading stopped early. Everything read up to that
	// point is still in the returned stats.
	ReadErr error
}

// Parser turns log text into stats.
type Parser struct {
	log *slog.Logger
}

// New returns a Parser that reports diagnostics to log. A nil log uses
// slog.Default().
func New(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{log: log}
}

// ParseFile opens path and parses it. A missing file is reported as an
// error wrapping os.ErrNotExist.
func (p *Parser) ParseFile(path string) (*stats.Stats, Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Result{}, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	s, res := p.Parse(f)
	return s, res, nil
}

// Parse reads r to the end, one line at a time. Lines that do not parse
// are skipped silently; a read error ends the parse and is recorded in
// Result.ReadErr.
func (p *Parser) Parse(r io.Reader) (*stats.Stats, Result) {
	s := stats.New()
	m := NewMachine(s)
	res := Result{LastTimestamp: time.Unix(0, 0).UTC()}

	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			res.TotalLines++
			p.feed(m, raw, &res)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				res.ReadErr = err
				p.log.Warn("log read stopped early", "line", res.TotalLines, "err", err)
			}
			break
		}
	}

	res.Matches = s.Len()
	p.log.Debug("parsed log",
		"report", s.ID,
		"lines", res.TotalLines,
		"skipped", res.SkippedLines,
		"matches", res.Matches,
		"events", res.Events,
		"state", m.State(),
	)
	return s, res
}

func (p *Parser) feed(m *Machine, raw string, res *Result) {
	line, ok := ParseLine(raw)
	if !ok {
		res.SkippedLines++
		return
	}
	res.ParsedLines++

	ev, err := m.Feed(line.Time, line.Message)
	if err != nil {
		p.log.Debug("message dropped", "line", res.TotalLines, "err", err)
	}
	if ev == EventDamage {
		res.Events++
	}
	res.LastTimestamp = line.Time
}
