package publish

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}

// stageRun lays out a populated output tree plus the assets the publisher
// picks up from its parent, and returns (outDir, htmlPath).
func stageRun(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "run", "output")
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "OFFTRIAL_1"), 0755))

	require.NoError(t, os.WriteFile(filepath.Join(outDir, "summary.html"), []byte("<html></html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "OFFTRIAL_1", "plot.png"), []byte("png"), 0644))

	for _, name := range []string{"style.css", "toggle.js"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "run", name), []byte("/* "+name+" */"), 0644))
	}

	htmlParent := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(htmlParent, 0755))

	return outDir, filepath.Join(htmlParent, "GRB100916A")
}

func TestTargetName(t *testing.T) {
	assert.Equal(t, "/web/GRB100916A_CLOSED", TargetName("/web/GRB100916A", false))
	assert.Equal(t, "/web/GRB100916A_OPEN", TargetName("/web/GRB100916A", true))
}

func TestPublishFresh(t *testing.T) {
	outDir, htmlPath := stageRun(t)

	publisher := NewPublisher(testLogger())

	var warnings bytes.Buffer
	publisher.SetOutput(&warnings)

	target, err := publisher.Publish(outDir, htmlPath, false)
	require.NoError(t, err)

	assert.Equal(t, htmlPath+"_CLOSED", target)
	assert.Empty(t, warnings.String())

	assert.FileExists(t, filepath.Join(target, "summary.html"))
	assert.FileExists(t, filepath.Join(target, "OFFTRIAL_1", "plot.png"))
	assert.FileExists(t, filepath.Join(target, "style.css"))
	assert.FileExists(t, filepath.Join(target, "toggle.js"))
}

func TestPublishOpenBoxSuffix(t *testing.T) {
	outDir, htmlPath := stageRun(t)

	target, err := NewPublisher(testLogger()).Publish(outDir, htmlPath, true)
	require.NoError(t, err)
	assert.Equal(t, htmlPath+"_OPEN", target)
}

func TestPublishCollisionPreservesExisting(t *testing.T) {
	outDir, htmlPath := stageRun(t)

	// A previous publication sits at the canonical path.
	canonical := htmlPath + "_CLOSED"
	require.NoError(t, os.MkdirAll(canonical, 0755))
	sentinel := filepath.Join(canonical, "previous.html")
	require.NoError(t, os.WriteFile(sentinel, []byte("old"), 0644))

	publisher := NewPublisher(testLogger())

	var warnings bytes.Buffer
	publisher.SetOutput(&warnings)

	target, err := publisher.Publish(outDir, htmlPath, false)
	require.NoError(t, err)

	assert.Regexp(t, `_CLOSED_[A-Z0-9]{8}$`, target)
	assert.NotEqual(t, canonical, target)

	// The prior publication is untouched and did not gain our files.
	data, err := os.ReadFile(sentinel)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	assert.NoFileExists(t, filepath.Join(canonical, "summary.html"))

	// The warning names both the colliding and the chosen paths.
	assert.Contains(t, warnings.String(), canonical)
	assert.Contains(t, warnings.String(), target)

	assert.FileExists(t, filepath.Join(target, "summary.html"))
}

func TestPublishAssetOverwriteIsIdempotent(t *testing.T) {
	outDir, htmlPath := stageRun(t)

	publisher := NewPublisher(testLogger())
	publisher.SetOutput(io.Discard)

	_, err := publisher.Publish(outDir, htmlPath, false)
	require.NoError(t, err)

	// A second run collides, suffixes, and again overwrites its own assets.
	target, err := publisher.Publish(outDir, htmlPath, false)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "style.css"))
}

func TestCopyTreeRefusesExistingDestination(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir() // already exists

	require.Error(t, copyTree(src, dst))
}

func TestPublishFailsWithoutAssets(t *testing.T) {
	outDir, htmlPath := stageRun(t)
	require.NoError(t, os.Remove(filepath.Join(filepath.Dir(outDir), "style.css")))

	_, err := NewPublisher(testLogger()).Publish(outDir, htmlPath, false)
	require.Error(t, err)
}

func TestRandomSuffix(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 32; i++ {
		suffix, err := randomSuffix(8)
		require.NoError(t, err)

		assert.Len(t, suffix, 8)
		assert.Regexp(t, `^[A-Z0-9]{8}$`, suffix)

		seen[suffix] = true
	}

	// 32 draws from a 36^8 space colliding would point at a broken source.
	assert.Greater(t, len(seen), 1)
}
