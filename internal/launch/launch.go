// Package launch opens rendered reports in the user's default viewer.
package launch

import (
	"errors"
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// ErrLaunch is returned when the report could not be handed to a viewer.
var ErrLaunch = errors.New("failed to send stats HTML to web browser")

// Launcher opens a file for viewing.
type Launcher interface {
	Launch(path string) error
}

// Browser opens files with the platform's default browser.
type Browser struct {
	// Output receives anything the helper process prints. Nil discards it.
	Output io.Writer
}

func (b Browser) Launch(path string) error {
	out := b.Output
	if out == nil {
		out = io.Discard
	}
	browser.Stdout = out
	browser.Stderr = out
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	return nil
}

// Func adapts a plain function to Launcher.
type Func func(path string) error

func (f Func) Launch(path string) error { return f(path) }

// Nop skips launching and always succeeds.
var Nop = Func(func(string) error { return nil })
