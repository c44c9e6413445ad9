// Package console prints the banner and colored progress lines. It is
// cosmetic only; nothing in the parse or render path depends on it.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const theText = `    --.--|   |,---.
      |  |---||---
      |  |   ||
      ` + "`  `   '`---'"

const cullingText = `   ____  _     _     _     _  _      _____
  /   _\/ \ /\/ \   / \   / \/ \  /|/  __/
  |  /  | | ||| |   | |   | || |\ ||| |  _
  |  \__| \_/|| |_/\| |_/\| || | \||| |_//
  \____/\____/\____/\____/\_/\_/  \|\____\`

// Console writes user-facing messages.
type Console struct {
	out    io.Writer
	errOut io.Writer
	in     io.Reader

	// Interactive is true when a person can answer the "press <enter>"
	// prompt.
	Interactive bool

	white  lipgloss.Style
	red    lipgloss.Style
	blue   lipgloss.Style
	yellow lipgloss.Style
	errRed lipgloss.Style
}

// New returns a Console bound to the process's standard streams.
func New() *Console {
	c := NewWithIO(os.Stdout, os.Stderr, os.Stdin)
	c.Interactive = term.IsTerminal(os.Stdin.Fd())
	return c
}

// NewWithIO returns a non-interactive Console on the given streams. Colors
// are only emitted when out and errOut are terminals.
func NewWithIO(out, errOut io.Writer, in io.Reader) *Console {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Console{
		out:    out,
		errOut: errOut,
		in:     in,
		white:  outR.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		red:    outR.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		blue:   outR.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		yellow: outR.NewStyle().Foreground(lipgloss.Color("3")),
		errRed: errR.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Banner prints the program logo and version.
func (c *Console) Banner(version string) {
	for _, line := range strings.Split(theText, "\n") {
		fmt.Fprintln(c.out, c.white.Render(line))
	}
	for _, line := range strings.Split(cullingText, "\n") {
		fmt.Fprintln(c.out, c.red.Render(line))
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.blue.Render("     DAMAGE STATS PARSER / GRAPHER v"+version))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out)
}

// Status prints a progress line preceded by a blank line.
func (c *Console) Status(format string, args ...any) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.yellow.Render(fmt.Sprintf(format, args...)))
}

// Println prints an unstyled line.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Error reports a fatal error on the error stream.
func (c *Console) Error(err error) {
	fmt.Fprint(c.errOut, "\n\n"+c.errRed.Render("ERROR: "+err.Error())+"\n")
}

// WaitForEnter holds the window open until the user presses enter, so the
// message stays visible when launched from a desktop shortcut. It does
// nothing when the console is not interactive.
func (c *Console) WaitForEnter() {
	if !c.Interactive {
		return
	}
	fmt.Fprint(c.errOut, "\npress <enter> to quit")
	_, _ = bufio.NewReader(c.in).ReadString('\n')
}

// NewLogger returns the diagnostic logger. Debug output is enabled by
// verbose; otherwise only warnings and errors are shown.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
