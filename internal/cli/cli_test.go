package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/slope/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "slope.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const emptyConfig = "slope: {}\n"

// --- pointValue ---

func TestPointValue(t *testing.T) {
	var p domain.Point
	v := pointValue{&p}

	if err := v.Set("(1.5, -2)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != (domain.Point{X: 1.5, Y: -2}) {
		t.Fatalf("unexpected point %v", p)
	}
	if got := v.String(); got != "1.5,-2.0" {
		t.Fatalf("String() = %q", got)
	}
	if err := v.Set("1;2"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

// --- calc ---

func TestCalc_Pretty(t *testing.T) {
	cfg := writeConfig(t, emptyConfig)

	out, err := runRoot(t, "calc", "--config", cfg, "--p1", "0,0", "--p2", "2,4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"2.0000",
		"y = 2.0000x + 0.0000",
		"Positive slope: the line is increasing",
		"4.4721",
		"m = (y2 - y1) / (x2 - x1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCalc_JSONVertical(t *testing.T) {
	cfg := writeConfig(t, emptyConfig)

	out, err := runRoot(t, "calc", "--config", cfg, "--p1", "1,5", "--p2", "1,-3", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if got["slope"] != nil || got["intercept"] != nil {
		t.Fatalf("expected null slope and intercept, got %v %v", got["slope"], got["intercept"])
	}
	if got["classification"] != "vertical" {
		t.Fatalf("unexpected classification %v", got["classification"])
	}
	if got["distance"] != 8.0 {
		t.Fatalf("unexpected distance %v", got["distance"])
	}
}

func TestCalc_DefaultsFromConfig(t *testing.T) {
	cfg := writeConfig(t, "slope:\n  defaults:\n    p1: [-2, 3]\n    p2: [4, 3]\n")

	out, err := runRoot(t, "calc", "--config", cfg, "-q", "$.classification", "-q", "$.distance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "horizontal\n6\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCalc_QueryVerticalSlopeFails(t *testing.T) {
	cfg := writeConfig(t, emptyConfig)

	_, err := runRoot(t, "calc", "--config", cfg, "--p1", "1,1", "--p2", "1,1", "-q", "$.slope")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCalc_WritesChart(t *testing.T) {
	cfg := writeConfig(t, emptyConfig)
	png := filepath.Join(t.TempDir(), "out.png")

	out, err := runRoot(t, "calc", "--config", cfg, "--p1", "0,0", "--p2", "2,4", "--chart", png, "-q", "$.chart")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != png {
		t.Fatalf("unexpected output %q", out)
	}
	info, err := os.Stat(png)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected chart at %s: %v", png, err)
	}
}

func TestCalc_Errors(t *testing.T) {
	cfg := writeConfig(t, emptyConfig)

	if _, err := runRoot(t, "calc", "--config", cfg, "--format", "xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if _, err := runRoot(t, "calc", "--config", cfg, "--p1", "nope"); err == nil {
		t.Fatalf("expected error for invalid point")
	}
	if _, err := runRoot(t, "calc", "--config", filepath.Join(t.TempDir(), "missing.yaml")); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found for missing config, got %v", err)
	}

	bad := writeConfig(t, "slope:\n  defaults:\n    step: 0\n")
	if _, err := runRoot(t, "calc", "--config", bad); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}
}

// --- loadConfig ---

func TestLoadConfig_ExplicitPath(t *testing.T) {
	path := writeConfig(t, "slope:\n  chart:\n    output: charts/line.svg\n")

	cfg, root, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != filepath.Dir(path) {
		t.Fatalf("expected root %s, got %s", filepath.Dir(path), root)
	}
	if cfg.Chart.Output != "charts/line.svg" {
		t.Fatalf("unexpected output %q", cfg.Chart.Output)
	}
	if cfg.Defaults.Step != domain.DefaultConfig().Defaults.Step {
		t.Fatalf("defaults should fill unset fields")
	}
}

// --- version ---

func TestVersion(t *testing.T) {
	out, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "slope dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- init ---

func TestInit_WritesConfigOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")

	out, err := runRoot(t, "init", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, filepath.Join(dir, "slope.yaml")) {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runRoot(t, "init", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Fatalf("unexpected output %q", out)
	}

	res, err := runRoot(t, "calc", "--config", filepath.Join(dir, "slope.yaml"), "-q", "$.slope")
	if err != nil {
		t.Fatalf("generated config should load: %v", err)
	}
	if res != "1\n" {
		t.Fatalf("unexpected slope %q", res)
	}
}
