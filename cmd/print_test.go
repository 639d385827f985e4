package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/twiced-technology-gmbh/tasklist/internal/config"
	"github.com/twiced-technology-gmbh/tasklist/internal/date"
	"github.com/twiced-technology-gmbh/tasklist/internal/output"
	"github.com/twiced-technology-gmbh/tasklist/internal/task"
)

// usePrint points the print command at a temporary task file and captures
// its output.
func usePrint(t *testing.T, tasks ...*task.Task) (*bytes.Buffer, string) {
	t.Helper()
	t.Setenv(output.EnvFormat, "")

	path := filepath.Join(t.TempDir(), task.DefaultFile)
	if len(tasks) > 0 {
		if err := task.Write(path, tasks); err != nil {
			t.Fatal(err)
		}
	}

	origCfg := cfg
	t.Cleanup(func() {
		cfg = origCfg
		printCmd.SetOut(nil)
		_ = printCmd.Flags().Set("search", "")
	})
	cfg = config.Default()
	cfg.DataFile = path

	var out bytes.Buffer
	printCmd.SetOut(&out)
	return &out, path
}

func TestPrintEmptyFile(t *testing.T) {
	out, _ := usePrint(t)
	if err := runPrint(printCmd, nil); err != nil {
		t.Fatalf("runPrint: %v", err)
	}
	if out.String() != msgNoTasks+"\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestPrintNoMatches(t *testing.T) {
	today := date.New(2024, time.March, 10)
	out, _ := usePrint(t, task.New(task.Low, today, date.Clock{}, []string{"save 100%"}, today))
	if err := printCmd.Flags().Set("search", "%d"); err != nil {
		t.Fatal(err)
	}
	if err := runPrint(printCmd, nil); err != nil {
		t.Fatalf("runPrint: %v", err)
	}
	if out.String() != msgNoMatches+"\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestPrintTableKeepsPercent(t *testing.T) {
	today := date.New(2024, time.March, 10)
	out, _ := usePrint(t, task.New(task.Low, today, date.Clock{}, []string{"save 100%"}, today))
	if err := runPrint(printCmd, nil); err != nil {
		t.Fatalf("runPrint: %v", err)
	}
	if !strings.Contains(out.String(), "|save 100%") {
		t.Errorf("table lost the description:\n%s", out.String())
	}
}
