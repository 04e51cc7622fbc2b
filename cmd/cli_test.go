package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/pillars/internal/catalog"
	"github.com/ziadkadry99/pillars/internal/config"
)

// newTestCmd resets the package globals and returns a command whose output
// is captured.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	t.Cleanup(func() { cfg = nil })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestListCmd(t *testing.T) {
	cmd, out := newTestCmd(t)

	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "1. Budgeting Basics") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[7], "8. Taxes & Wealth Building") {
		t.Errorf("last line = %q", lines[7])
	}
}

func TestNextPrevCmd(t *testing.T) {
	tests := []struct {
		name string
		run  func(*cobra.Command, []string) error
		arg  string
		want string
	}{
		{"next middle", runNext, "7", "8. Taxes & Wealth Building"},
		{"next last", runNext, "8", "none"},
		{"next unknown", runNext, "42", "none"},
		{"prev first", runPrev, "1", "none"},
		{"prev middle", runPrev, "5", "4. Understanding Credit"},
		{"prev unknown", runPrev, "0", "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := newTestCmd(t)
			if err := tt.run(cmd, []string{tt.arg}); err != nil {
				t.Fatalf("run: %v", err)
			}
			if !strings.HasPrefix(out.String(), tt.want) {
				t.Errorf("output = %q, want prefix %q", out.String(), tt.want)
			}
		})
	}
}

func TestNextCmdInvalidID(t *testing.T) {
	cmd, _ := newTestCmd(t)
	if err := runNext(cmd, []string{"abc"}); err == nil {
		t.Fatal("expected error for non-integer id")
	}
}

func TestShowCmd(t *testing.T) {
	cmd, out := newTestCmd(t)

	if err := runShow(cmd, []string{"1"}); err != nil {
		t.Fatalf("runShow: %v", err)
	}
	for _, want := range []string{
		"1. Budgeting Basics",
		"Difficulty: Beginner",
		"Previous: none",
		"Next: 2. Emergency Fund",
		"why-budget",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := runShow(cmd, []string{"99"}); err == nil {
		t.Error("expected error for unknown pillar")
	}
}

func TestSearchCmd(t *testing.T) {
	cmd, out := newTestCmd(t)

	if err := runSearch(cmd, []string{"emergency"}); err != nil {
		t.Fatalf("runSearch: %v", err)
	}
	if !strings.Contains(out.String(), "Emergency Fund") {
		t.Errorf("output = %q", out)
	}

	out.Reset()
	if err := runSearch(cmd, []string{"zzzz"}); err != nil {
		t.Fatalf("runSearch: %v", err)
	}
	if !strings.Contains(out.String(), "No matching pillars") {
		t.Errorf("output = %q", out)
	}
}

func TestValidateCmdCatalogFile(t *testing.T) {
	cmd, out := newTestCmd(t)

	path := filepath.Join(t.TempDir(), "catalog.yml")
	if err := catalog.WriteFile(catalog.Default(), path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg.CatalogFile = path

	if err := runValidate(cmd, nil); err != nil {
		t.Fatalf("runValidate: %v", err)
	}
	if !strings.Contains(out.String(), "is valid (8 pillars)") {
		t.Errorf("output = %q", out)
	}
}

func TestValidateCmdBrokenCatalog(t *testing.T) {
	cmd, _ := newTestCmd(t)

	path := filepath.Join(t.TempDir(), "catalog.yml")
	broken := "pillars:\n  - id: 1\n    title: One\n    path: /one\n    difficulty: 1\n  - id: 3\n    title: Three\n    path: /three\n    difficulty: 9\n"
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.CatalogFile = path

	if err := runValidate(cmd, nil); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestExportCmd(t *testing.T) {
	cmd, out := newTestCmd(t)
	path := filepath.Join(t.TempDir(), "pillars.db")
	cmd.Flags().String("out", path, "")
	t.Setenv("CI", "1")

	if err := runExport(cmd, nil); err != nil {
		t.Fatalf("runExport: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database not written: %v", err)
	}
	if !strings.Contains(out.String(), "Exported 8 pillars") {
		t.Errorf("output = %q", out)
	}
}

func TestSiteCmd(t *testing.T) {
	cmd, out := newTestCmd(t)
	dir := t.TempDir()
	cmd.Flags().String("output", dir, "")
	cmd.Flags().Bool("serve", false, "")
	t.Setenv("CI", "1")

	if err := runSite(cmd, nil); err != nil {
		t.Fatalf("runSite: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		t.Errorf("index.html not written: %v", err)
	}
	if !strings.Contains(out.String(), "9 pages") {
		t.Errorf("output = %q", out)
	}
}

func TestWriteStarterCatalog(t *testing.T) {
	cmd, _ := newTestCmd(t)
	path := filepath.Join(t.TempDir(), "starter", "pillars.yml")
	cmd.Flags().String("catalog", path, "")

	if err := writeStarterCatalog(cmd); err != nil {
		t.Fatalf("writeStarterCatalog: %v", err)
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 8 {
		t.Errorf("starter catalog has %d pillars, want 8", c.Len())
	}
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config.LogWarn, false)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if l.Core().Enabled(zap.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}

	l, err = newLogger(config.LogWarn, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if !l.Core().Enabled(zap.DebugLevel) {
		t.Error("verbose should enable debug")
	}

	if _, err := newLogger("loud", false); err == nil {
		t.Error("expected error for unknown level")
	}
}
