package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/trajsim/internal/export"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunPrintsMetrics(t *testing.T) {
	out, _, err := execute(t, "run", "--plot=false")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"10.19", "40.77", "2.88"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunWithChart(t *testing.T) {
	out, _, err := execute(t, "run", "--velocity", "30", "--angle", "60")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "height (m)") {
		t.Error("chart caption missing")
	}
}

func TestRunExportStdout(t *testing.T) {
	out, _, err := execute(t, "run", "--out", "-", "--format", "json")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var data export.ExportData
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("stdout is not json: %v", err)
	}
	if !data.Landed || len(data.Points) < 2 {
		t.Errorf("unexpected export: landed=%v points=%d", data.Landed, len(data.Points))
	}
}

func TestRunExportDotPlot(t *testing.T) {
	out, _, err := execute(t, "run", "-o", "-", "--format", "svg-dots", "--preset", "cliff")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "<circle") {
		t.Errorf("expected a dot svg on stdout, got %.80q", out)
	}
}

func TestRunExportFileInfersFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectory.csv")
	if _, _, err := execute(t, "run", "--plot=false", "-o", path, "--height", "5"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("export missing: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("not csv: %v", err)
	}
	if records[1][1] != "5.000000" {
		t.Errorf("expected launch height 5 in first row, got %v", records[1])
	}
}

func TestRunSafetyLimitWarns(t *testing.T) {
	out, errOut, err := execute(t, "run", "--plot=false", "--gravity", "0", "--log-level", "warn")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "safety limit") {
		t.Error("warning missing from metrics panel")
	}
	if !strings.Contains(errOut, "trajectory may be incomplete") {
		t.Errorf("warning not logged: %q", errOut)
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	tests := [][]string{
		{"run", "--velocity", "0"},
		{"run", "--velocity", "+Inf"},
		{"run", "--height", "Inf"},
		{"run", "--angle", "95"},
		{"run", "--height", "-1"},
		{"run", "--dt", "0"},
		{"run", "--format", "xml"},
		{"run", "--preset", "nope"},
	}
	for _, args := range tests {
		if _, _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error, got nil", args)
		}
	}
}

func TestRunPresetAndConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "launch.yaml")
	if err := os.WriteFile(path, []byte("angle: 90\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// moon gravity from the preset, vertical from the file, speed from the flag.
	out, _, err := execute(t, "run", "--plot=false", "--preset", "moon", "--config", path, "-v", "10")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	// 10^2 / (2 * 1.62)
	if !strings.Contains(out, "30.86") {
		t.Errorf("expected max height 30.86:\n%s", out)
	}
}

func TestSweep(t *testing.T) {
	out, _, err := execute(t, "sweep", "--from", "30", "--to", "60", "--step", "15", "--workers", "2")
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "ANGLE") {
		t.Errorf("missing header: %q", lines[0])
	}
	if !strings.Contains(out, "longest range: 40.77 m at 45.00 deg") {
		t.Errorf("unexpected best line:\n%s", out)
	}
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "compare", "--steps", "0.1,0.01")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if !strings.Contains(out, "closed form") {
		t.Error("missing closed-form line")
	}
	if strings.Count(out, "e-") < 2 {
		t.Errorf("expected error columns:\n%s", out)
	}

	if _, _, err := execute(t, "compare", "-g", "0"); err == nil {
		t.Error("expected error without gravity")
	}
}

func TestPresets(t *testing.T) {
	out, _, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, name := range []string{"cliff", "moon", "vertical"} {
		if !strings.Contains(out, name) {
			t.Errorf("preset %s not listed", name)
		}
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajsim.yaml")
	if _, _, err := execute(t, "init-config", path); err != nil {
		t.Fatalf("init-config failed: %v", err)
	}

	out, _, err := execute(t, "run", "--plot=false", "--config", path)
	if err != nil {
		t.Fatalf("run with written config failed: %v", err)
	}
	if !strings.Contains(out, "40.77") {
		t.Error("default config should reproduce the default launch")
	}
}
