package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/Fjolfrin/tbtui/internal/config"
	tberrors "github.com/Fjolfrin/tbtui/internal/errors"
	"github.com/Fjolfrin/tbtui/internal/report"
	"github.com/Fjolfrin/tbtui/internal/session"
)

// setup installs an in-memory filesystem holding two runs and a stub TUI.
// It returns a pointer to the context the stub received.
func setup(t *testing.T) *session.Context {
	t.Helper()
	t.Setenv("TBTUI_LOG_DIR", t.TempDir())

	fs := afero.NewMemMapFs()
	files := map[string]string{
		"runs/run1_history.csv": "epoch,loss\n0,10\n1,9\n2,8\n3,7\n4,6\n5,5\n6,4\n7,3\n8,2\n9,1\n",
		"runs/run2_history.csv": "epoch,loss,acc\n0,5,0.1\n1,1,0.4\n2,5,0.2\n3,1,0.4\n",
		"runs/notes.csv":        "a,b\n1,2\n",
	}
	for name, body := range files {
		if err := afero.WriteFile(fs, name, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	oldFs, oldTUI := appFs, runTUI
	got := &session.Context{}
	appFs = fs
	runTUI = func(ctx session.Context) error {
		*got = ctx
		return nil
	}
	t.Cleanup(func() {
		appFs, runTUI = oldFs, oldTUI
	})
	return got
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootStartsTUI(t *testing.T) {
	got := setup(t)

	if _, err := execute(t, "--path", "runs", "--theme", "light"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(got.Runs) != 2 {
		t.Fatalf("TUI got %d runs, want 2", len(got.Runs))
	}
	if got.Runs[0].Name != "run1" || got.Runs[1].Name != "run2" {
		t.Errorf("runs = %s, %s", got.Runs[0].Name, got.Runs[1].Name)
	}
	if got.Config.Theme != config.ThemeLight {
		t.Errorf("Theme = %v, want light from the flag", got.Config.Theme)
	}
}

func TestRootEnvOverride(t *testing.T) {
	got := setup(t)
	t.Setenv("TBTUI_PATH", "runs")

	if _, err := execute(t); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.Config.Path != "runs" {
		t.Errorf("Path = %q, want runs from TBTUI_PATH", got.Config.Path)
	}
}

func TestRootNoHistoryFiles(t *testing.T) {
	got := setup(t)
	if err := appFs.MkdirAll("empty", 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "--path", "empty")
	if !errors.Is(err, tberrors.ErrNotFound) {
		t.Fatalf("Execute() error = %v, want ErrNotFound", err)
	}
	if got.Runs != nil {
		t.Error("TUI should not start without runs")
	}
	if !strings.Contains(tberrors.FormatError(err), "_history.csv") {
		t.Errorf("error should name the suffix:\n%s", tberrors.FormatError(err))
	}
}

func TestRootInvalidTheme(t *testing.T) {
	setup(t)
	_, err := execute(t, "--path", "runs", "--theme", "neon")
	if !errors.Is(err, tberrors.ErrConfig) {
		t.Fatalf("Execute() error = %v, want ErrConfig", err)
	}
}

func TestRootConfigFile(t *testing.T) {
	got := setup(t)
	cfgPath := filepath.Join(t.TempDir(), "tbtui.yaml")
	if err := os.WriteFile(cfgPath, []byte("path: runs\nmax_ticks: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "--config", cfgPath); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.Config.Path != "runs" || got.Config.MaxTicks != 10 {
		t.Errorf("config = %+v", got.Config)
	}
}

func TestRootMissingConfigFile(t *testing.T) {
	setup(t)
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, tberrors.ErrConfig) {
		t.Fatalf("Execute() error = %v, want ErrConfig", err)
	}
}

func TestSummaryJSON(t *testing.T) {
	setup(t)

	out, err := execute(t, "summary", "--path", "runs", "--output", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var runs []report.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	loss := runs[0].Metrics[0]
	if loss.Min.Value != 1 || loss.Min.Index != 9 {
		t.Errorf("run1 loss min = %+v, want 1 at 9", *loss.Min)
	}
	if runs[1].Metrics[0].Min.Index != 1 {
		t.Errorf("run2 loss min should be the first occurrence")
	}
}

func TestSummaryText(t *testing.T) {
	setup(t)

	out, err := execute(t, "summary", "--path", "runs")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"run1", "run2", "loss", "acc"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestSummaryBadFormat(t *testing.T) {
	setup(t)
	if _, err := execute(t, "summary", "--path", "runs", "-o", "xml"); !errors.Is(err, tberrors.ErrConfig) {
		t.Errorf("Execute() error = %v, want ErrConfig", err)
	}
}

func TestExport(t *testing.T) {
	setup(t)

	out, err := execute(t, "export", "--path", "runs", "--out", "charts.html", "--title", "sweep")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Wrote charts.html") {
		t.Errorf("output = %q", out)
	}

	html, err := afero.ReadFile(appFs, "charts.html")
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if !strings.Contains(string(html), "sweep") {
		t.Error("page title not set")
	}
	if got := strings.Count(string(html), "echarts.init("); got != 3 {
		t.Errorf("got %d charts, want 3", got)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "tbtui dev") {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, `"version": "dev"`) {
		t.Errorf("output = %q", out)
	}
}

func TestCommandTree(t *testing.T) {
	root := newRootCmd()
	want := map[string]bool{"summary": false, "export": false, "version": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing %s command", name)
		}
	}
	for _, flag := range []string{"path", "suffix", "epoch-column", "config", "verbose"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing --%s flag", flag)
		}
	}
}
