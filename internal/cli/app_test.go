package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ucli "github.com/urfave/cli/v2"

	"github.com/gwastro/pygrb-results-page/internal/config"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

// stageRun prepares a run directory tree and returns the common flag set.
func stageRun(t *testing.T) (outDir, configFile, htmlPath string) {
	t.Helper()

	dir := t.TempDir()

	outDir = filepath.Join(dir, "run", "output")
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "OFFTRIAL_1"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "OFFTRIAL_2"), 0755))

	configFile = filepath.Join(dir, "analysis.ini")
	require.NoError(t, os.WriteFile(configFile, []byte("[workflow]\n"), 0644))

	htmlParent := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(htmlParent, 0755))

	return outDir, configFile, filepath.Join(htmlParent, "GRB100916A")
}

func TestAppEndToEnd(t *testing.T) {
	outDir, configFile, htmlPath := stageRun(t)

	app := NewApp(testLogger())
	err := app.Run([]string{
		AppName,
		"--grb-name", "100916A",
		"--config-file", configFile,
		"--ifo-tag", "H1L1",
		"--start-time", "969675608",
		"--output-path", outDir,
		"--html-path", htmlPath,
		"--mass-bins", "0.0-8.0,8.0-25.0",
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(outDir, "summary.html"))
	assert.FileExists(t, filepath.Join(outDir, "summary.json"))

	published := htmlPath + "_CLOSED"
	assert.FileExists(t, filepath.Join(published, "summary.html"))
	assert.FileExists(t, filepath.Join(published, "style.css"))
	assert.FileExists(t, filepath.Join(published, "toggle.js"))
	assert.DirExists(t, filepath.Join(published, "OFFTRIAL_1"))
	assert.DirExists(t, filepath.Join(published, "OFFTRIAL_2"))
}

func TestAppMissingRequiredFlags(t *testing.T) {
	app := NewApp(testLogger())

	err := app.Run([]string{AppName, "--grb-name", "100916A"})
	require.Error(t, err)
}

func TestResolveConfigFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()

	runConfig := filepath.Join(dir, "run.yaml")
	content := `
grb_name: "100916A"
ifo_tag: H1L1
config_file: analysis.ini
html_path: /web/GRB100916A
open_box: false
`
	require.NoError(t, os.WriteFile(runConfig, []byte(content), 0644))

	var got *config.RunConfig

	app := NewApp(testLogger())
	app.Action = func(ctx *ucli.Context) error {
		cfg, err := resolveConfig(ctx)
		if err != nil {
			return err
		}

		got = cfg

		return nil
	}

	err := app.Run([]string{
		AppName,
		"--run-config", runConfig,
		"--ifo-tag", "H1L1V1",
		"--open-box",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "100916A", got.GRBName, "file value survives")
	assert.Equal(t, "H1L1V1", got.IfoTag, "flag overrides file")
	assert.True(t, got.OpenBox, "flag overrides file")
	assert.Equal(t, "analysis.ini", got.ConfigFile)
}
