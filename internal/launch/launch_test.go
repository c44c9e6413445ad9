package launch

import (
	"errors"
	"testing"
)

func TestFuncLauncher(t *testing.T) {
	var got string
	l := Func(func(path string) error {
		got = path
		return nil
	})
	if err := l.Launch("/tmp/report.html"); err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if got != "/tmp/report.html" {
		t.Errorf("launched %q", got)
	}
}

func TestNop(t *testing.T) {
	if err := Nop.Launch("anything"); err != nil {
		t.Errorf("Nop.Launch returned %v", err)
	}
}

func TestBrowserMissingFile(t *testing.T) {
	// PATH is emptied so no opener helper can be found on any platform
	// that shells out.
	t.Setenv("PATH", "")
	err := Browser{}.Launch("/nonexistent/culling-damage.html")
	if err == nil {
		t.Skip("platform opened the file without a helper")
	}
	if !errors.Is(err, ErrLaunch) {
		t.Errorf("expected ErrLaunch, got %v", err)
	}
}
