package cli_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/colourcraft/internal/cli"
	"github.com/jmylchreest/colourcraft/internal/config"
)

// env is an isolated database plus a scratch directory for one test.
type env struct {
	t   *testing.T
	db  string
	dir string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	for _, key := range []string{config.EnvDB, config.EnvMode, config.EnvIterations, config.EnvSampleSize, config.EnvNoPreview} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	return &env{t: t, db: filepath.Join(dir, "state", "colourcraft.db"), dir: dir}
}

// run executes one command against a fresh command tree.
func (e *env) run(args ...string) (string, error) {
	e.t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(append([]string{"--db", e.db}, args...))
	err := rootCmd.Execute()
	return outBuf.String(), err
}

func (e *env) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	if err != nil {
		e.t.Fatalf("%v: %v", args, err)
	}
	return out
}

func (e *env) writeImage(name string, c color.Color) string {
	e.t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := range 30 {
		for x := range 40 {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		e.t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		e.t.Fatal(err)
	}
	return path
}

func TestShowDefaultPalette(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun("show")
	for _, want := range []string{"primary", "#6366F1", "muted", "#3B82F6"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("preview should be off when output is not a terminal")
	}
}

func TestGetFormats(t *testing.T) {
	e := newEnv(t)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"get", "1"}, "#6366F1\n"},
		{[]string{"get", "1", "-f", "rgb"}, "rgb(99, 102, 241)\n"},
		{[]string{"get", "5", "-f", "hex"}, "#3B82F6\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			if got := e.mustRun(tt.args...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	for _, bad := range [][]string{{"get", "0"}, {"get", "6"}, {"get", "x"}, {"get", "1", "-f", "cmyk"}} {
		if _, err := e.run(bad...); err == nil {
			t.Errorf("%v should fail", bad)
		}
	}
}

func TestGenerateKeepsLockedSlots(t *testing.T) {
	e := newEnv(t)
	e.mustRun("lock", "1", "3")

	out := e.mustRun("show", "-f", "json")
	if strings.Count(out, `"locked": true`) != 2 {
		t.Fatalf("expected two locked slots:\n%s", out)
	}

	for _, mode := range []string{"triadic", "analogous", "random"} {
		e.mustRun("generate", "-m", mode, "--seed", "5")
		if got := e.mustRun("get", "1"); got != "#6366F1\n" {
			t.Errorf("%s: locked slot 1 changed to %q", mode, got)
		}
		if got := e.mustRun("get", "3"); got != "#F59E0B\n" {
			t.Errorf("%s: locked slot 3 changed to %q", mode, got)
		}
	}

	e.mustRun("lock", "1")
	out = e.mustRun("show", "-f", "json")
	if strings.Count(out, `"locked": true`) != 1 {
		t.Errorf("expected lock toggled off:\n%s", out)
	}
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	a := newEnv(t).mustRun("generate", "-m", "complementary", "--seed", "42")
	b := newEnv(t).mustRun("generate", "-m", "complementary", "--seed", "42")
	if a != b {
		t.Errorf("same seed produced different palettes:\n%s\n%s", a, b)
	}
}

func TestGenerateRejectsUnknownMode(t *testing.T) {
	if _, err := newEnv(t).run("generate", "-m", "sepia"); err == nil {
		t.Error("unknown mode should be rejected")
	}
}

func TestGenerateModeFromEnvironment(t *testing.T) {
	e := newEnv(t)
	t.Setenv(config.EnvMode, "monochromatic")
	a := e.mustRun("generate", "--seed", "8")

	f := newEnv(t)
	b := f.mustRun("generate", "-m", "monochromatic", "--seed", "8")
	if a != b {
		t.Errorf("environment mode was not applied:\n%s\n%s", a, b)
	}
}

func TestLockRejectsBadSlots(t *testing.T) {
	e := newEnv(t)
	for _, bad := range []string{"0", "6", "one"} {
		if _, err := e.run("lock", bad); err == nil {
			t.Errorf("lock %s should fail", bad)
		}
	}
	if _, err := e.run("lock"); err == nil {
		t.Error("lock with no slots should fail")
	}
}

func TestExport(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun("export")
	if !strings.Contains(out, "--color-primary: #6366f1;") {
		t.Errorf("css export:\n%s", out)
	}
	out = e.mustRun("export", "-f", "scss")
	if !strings.HasPrefix(out, "$color-primary: #6366f1;") {
		t.Errorf("scss export:\n%s", out)
	}

	if _, err := e.run("export", "-f", "png"); err == nil {
		t.Error("png export without --output should fail")
	}
	if _, err := e.run("export", "-f", "pdf"); err == nil {
		t.Error("unknown export format should fail")
	}

	pngPath := filepath.Join(e.dir, "strip.png")
	e.mustRun("export", "-f", "png", "-o", pngPath)
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig() error = %v", err)
	}
	if cfg.Width != 500 || cfg.Height != 100 {
		t.Errorf("png size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestExtractReplacesPaletteAndClearsLocks(t *testing.T) {
	e := newEnv(t)
	red := e.writeImage("red.png", color.RGBA{R: 255, A: 255})

	e.mustRun("lock", "2")
	out := e.mustRun("extract", "--seed", "3", red)
	if strings.Count(out, "#FF0000") != 5 {
		t.Errorf("extract output:\n%s", out)
	}

	out = e.mustRun("show", "-f", "json")
	if strings.Contains(out, `"locked": true`) {
		t.Errorf("extract should clear locks:\n%s", out)
	}
	if strings.Count(out, `"hex": "#ff0000"`) != 5 {
		t.Errorf("palette not replaced:\n%s", out)
	}
}

func TestExtractOtherCountOnlyPrints(t *testing.T) {
	e := newEnv(t)
	blue := e.writeImage("blue.png", color.RGBA{B: 255, A: 255})

	out := e.mustRun("extract", "-c", "3", "--seed-mode", "content", blue)
	if out != "#0000FF\n#0000FF\n#0000FF\n" {
		t.Errorf("extract -c 3 = %q", out)
	}
	if got := e.mustRun("get", "1"); got != "#6366F1\n" {
		t.Errorf("palette should be unchanged, slot 1 = %q", got)
	}
}

func TestExtractFromDirectory(t *testing.T) {
	e := newEnv(t)
	imgDir := filepath.Join(e.dir, "walls")
	if err := os.Mkdir(imgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	e.dir = imgDir
	e.writeImage("only.png", color.RGBA{G: 255, A: 255})

	out := e.mustRun("extract", "-c", "1", imgDir)
	if out != "#00FF00\n" {
		t.Errorf("extract from directory = %q", out)
	}
}

func TestExtractFailuresLeaveStateAlone(t *testing.T) {
	e := newEnv(t)
	e.mustRun("lock", "4")

	notImage := filepath.Join(e.dir, "notes.png")
	if err := os.WriteFile(notImage, []byte("not really a png"), 0o600); err != nil {
		t.Fatal(err)
	}
	red := e.writeImage("red.png", color.RGBA{R: 255, A: 255})

	failures := [][]string{
		{"extract", filepath.Join(e.dir, "missing.png")},
		{"extract", notImage},
		{"extract", "--seed-mode", "manual", red},
		{"extract", "--seed-mode", "bogus", red},
		{"extract", "-c", "0", red},
		{"extract", "--iterations", "-2", red},
		{"extract", "--sample-size", "0", red},
	}
	for _, args := range failures {
		if _, err := e.run(args...); err == nil {
			t.Errorf("%v should fail", args)
		}
	}

	out := e.mustRun("show", "-f", "json")
	if !strings.Contains(out, `"hex": "#6366f1"`) || strings.Count(out, `"locked": true`) != 1 {
		t.Errorf("state changed after failed extracts:\n%s", out)
	}
}

func TestContrast(t *testing.T) {
	out := newEnv(t).mustRun("contrast")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected header, rule and 10 pairs, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "1-2") || !strings.HasPrefix(lines[11], "4-5") {
		t.Errorf("unexpected pair order:\n%s", out)
	}
	if !strings.Contains(out, ":1") {
		t.Errorf("missing ratios:\n%s", out)
	}
}

func TestSavedLifecycle(t *testing.T) {
	e := newEnv(t)

	if out := e.mustRun("saved", "list"); !strings.Contains(out, "No saved palettes") {
		t.Errorf("empty list = %q", out)
	}

	out := e.mustRun("saved", "save")
	fields := strings.Fields(out)
	if len(fields) != 3 || fields[0] != "Saved" {
		t.Fatalf("save output = %q", out)
	}
	id := fields[2]

	out = e.mustRun("saved", "list")
	if !strings.Contains(out, id) || !strings.Contains(out, "#6366f1") {
		t.Errorf("list output:\n%s", out)
	}

	e.mustRun("generate", "--seed", "1")
	e.mustRun("lock", "2")
	e.mustRun("saved", "load", id)
	if got := e.mustRun("get", "1"); got != "#6366F1\n" {
		t.Errorf("load did not restore palette, slot 1 = %q", got)
	}
	if out := e.mustRun("show", "-f", "json"); strings.Contains(out, `"locked": true`) {
		t.Error("load should clear locks")
	}

	e.mustRun("saved", "delete", id)
	if _, err := e.run("saved", "load", id); err == nil {
		t.Error("loading a deleted palette should fail")
	}
}

func TestVersionAndFlags(t *testing.T) {
	e := newEnv(t)
	if out := e.mustRun("version"); !strings.HasPrefix(out, "colourcraft version") {
		t.Errorf("version = %q", out)
	}
	if _, err := e.run("--verbose", "--quiet", "show"); err == nil {
		t.Error("--verbose and --quiet together should fail")
	}
}
