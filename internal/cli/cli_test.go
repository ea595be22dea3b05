package cli

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/endurance/internal/config"
	"github.com/idilsaglam/endurance/internal/model"
)

// isolate points config, data and logs at a temp dir and returns the data dir.
func isolate(t *testing.T) string {
	t.Helper()
	cfgDir := t.TempDir()
	t.Setenv("ENDURANCE_CONFIG_DIR", cfgDir)
	for _, k := range []string{"ENDURANCE_DIR", "ENDURANCE_BACKEND", "ENDURANCE_LINK", "ENDURANCE_LOG_LEVEL", "ENDURANCE_LOG_FILE", "ENDURANCE_THEME"} {
		t.Setenv(k, "")
	}
	return filepath.Join(cfgDir, "data")
}

func run(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	code = Execute(context.Background(), cmd)
	return out.String(), errb.String(), code
}

func writePNG(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "piece.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 3))))
	return path
}

func TestList_FreshStoreShowsDefaults(t *testing.T) {
	isolate(t)
	out, stderr, code := run(t, "ls")
	require.Equal(t, 0, code, stderr)
	for i := 0; i < model.Size; i++ {
		assert.Contains(t, out, model.DefaultName(i))
	}
	assert.Contains(t, out, "€ ?")
}

func TestNameAndPrice(t *testing.T) {
	isolate(t)

	out, stderr, code := run(t, "name", "3", "Blue", "vase")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "named Blue vase")

	out, _, code = run(t, "show", "3")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Piece 3")
	assert.Contains(t, out, "Blue vase")
	assert.Contains(t, out, "€ ???")

	_, _, code = run(t, "price", "3", "40")
	require.Equal(t, 0, code)
	out, _, _ = run(t, "show", "3")
	assert.Contains(t, out, "€ 40")

	out, _, code = run(t, "price", "3")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "price cleared")
	out, _, _ = run(t, "show", "3")
	assert.Contains(t, out, "€ ???")
}

func TestName_BlankIsUsageError(t *testing.T) {
	isolate(t)
	_, stderr, code := run(t, "name", "1", "   ")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "empty name")

	out, _, _ := run(t, "show", "1")
	assert.Contains(t, out, "Object 1")
}

func TestPhoto(t *testing.T) {
	dataDir := isolate(t)
	src := t.TempDir()

	out, stderr, code := run(t, "photo", "2", writePNG(t, src))
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "photo saved (PNG 4×3")

	raw, err := os.ReadFile(filepath.Join(dataDir, "endurance-items-v1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "data:image/png;base64,")

	bad := filepath.Join(src, "notes.txt")
	require.NoError(t, os.WriteFile(bad, []byte("hello"), 0o644))
	_, stderr, code = run(t, "photo", "2", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Image load failed")

	out, _, _ = run(t, "show", "2")
	assert.Contains(t, out, "PNG 4×3", "previous photo is kept")
}

func TestClear(t *testing.T) {
	isolate(t)
	_, _, code := run(t, "name", "1", "Kept?")
	require.Equal(t, 0, code)

	out, _, code := run(t, "clear")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "cleared")

	out, _, _ = run(t, "show", "1")
	assert.Contains(t, out, model.DetailTitlePlaceholder)
	assert.NotContains(t, out, "Kept?")
}

func TestSQLiteBackendIsSeparate(t *testing.T) {
	isolate(t)
	_, stderr, code := run(t, "--backend", "sqlite", "name", "5", "Lamp")
	require.Equal(t, 0, code, stderr)

	out, _, _ := run(t, "--backend", "sqlite", "show", "5")
	assert.Contains(t, out, "Lamp")

	out, _, _ = run(t, "show", "5")
	assert.NotContains(t, out, "Lamp")
}

func TestDirFlag(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	_, _, code := run(t, "--dir", dir, "name", "1", "Elsewhere")
	require.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(dir, "endurance-items-v1.json"))
}

func TestUsageErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"piece zero", []string{"show", "0"}, "out of range"},
		{"piece ten", []string{"show", "10"}, "out of range"},
		{"not a number", []string{"show", "x"}, "not a number"},
		{"missing args", []string{"photo", "1"}, "accepts 2 arg(s)"},
		{"unknown command", []string{"frobnicate"}, "unknown command"},
		{"unknown flag", []string{"ls", "--nope"}, "unknown flag"},
		{"bad backend", []string{"--backend", "redis", "ls"}, "unknown backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := run(t, tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestStart(t *testing.T) {
	tests := []struct {
		name      string
		item      string
		link      string
		wantIndex int
		wantOK    bool
	}{
		{"item flag", "4", "", 4, true},
		{"item wins over link", "4", "?item=2", 4, true},
		{"link url", "", "https://tag.example/?item=2", 2, true},
		{"raw query", "", "item=8", 8, true},
		{"invalid item", "abc", "?item=2", 0, false},
		{"out of range", "", "?item=9", 0, false},
		{"nothing", "", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &App{Item: tt.item, Link: tt.link}
			i, ok := a.start()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantIndex, i)
			}
		})
	}
}

func TestLinkFlagFallsBackToEnv(t *testing.T) {
	isolate(t)
	t.Setenv("ENDURANCE_LINK", "?item=5")
	cmd := NewRootCmd()
	assert.Equal(t, "?item=5", cmd.Flags().Lookup("link").DefValue)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("disk full")))
	assert.Equal(t, 2, ExitCode(errUsage("bad")))
	assert.Equal(t, 2, ExitCode(usageError{errors.New("wrapped")}))
}

func TestInit_WritesEffectiveConfig(t *testing.T) {
	isolate(t)
	cfgDir := os.Getenv("ENDURANCE_CONFIG_DIR")
	path := filepath.Join(cfgDir, "config.yaml")

	out, stderr, code := run(t, "--backend", "sqlite", "init")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend)

	// The written file now drives later runs without the flag.
	_, _, code = run(t, "name", "2", "Stored")
	require.Equal(t, 0, code)
	out, _, _ = run(t, "--backend", "sqlite", "show", "2")
	assert.Contains(t, out, "Stored")

	_, stderr, code = run(t, "init")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "already exists")

	_, _, code = run(t, "init", "--force")
	require.Equal(t, 0, code)
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend, "reads the file it overwrites")
}
