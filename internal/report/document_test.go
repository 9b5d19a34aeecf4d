package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentToggleIDsAreContiguous(t *testing.T) {
	doc := NewDocument("GRB 100916A: CLOSED BOX PAGE")

	titles := []string{"First", "Second", "Third"}
	for i, title := range titles {
		assert.Equal(t, i, doc.BeginSection(title))
	}

	sections := doc.Sections()
	require.Len(t, sections, len(titles))

	for i, section := range sections {
		assert.Equal(t, i, section.ToggleID)
		assert.Equal(t, titles[i], section.Title)
	}
}

func TestDocumentBeginSectionClosesPrevious(t *testing.T) {
	doc := NewDocument("page")
	doc.BeginSection("one")
	doc.Text("alpha")
	doc.BeginSection("two")

	html, err := doc.Render()
	require.NoError(t, err)

	// "alpha" belongs to the first section's container, which must have
	// been closed before the second heading was emitted.
	assert.Less(t, strings.Index(html, "alpha"), strings.Index(html, "two"))
	assert.Contains(t, html, "toggleSection('section-0')")
	assert.Contains(t, html, "toggleSection('section-1')")
}

func TestDocumentRenderEscapesText(t *testing.T) {
	doc := NewDocument("page")
	doc.BeginSection("one")
	doc.Text("a < b & c")

	html, err := doc.Render()
	require.NoError(t, err)

	assert.Contains(t, html, "a &lt; b &amp; c")
	assert.NotContains(t, html, "a < b & c")
}

func TestDocumentRenderIncludesAssetsAndTitle(t *testing.T) {
	doc := NewDocument("GRB 100916A: OPEN BOX PAGE")

	html, err := doc.Render()
	require.NoError(t, err)

	assert.Contains(t, html, "<title>GRB 100916A: OPEN BOX PAGE</title>")
	assert.Contains(t, html, `href="style.css"`)
	assert.Contains(t, html, `src="toggle.js"`)
}

func TestWriteAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteAssets(dir))

	for _, name := range []string{"style.css", "toggle.js"} {
		assert.FileExists(t, dir+"/"+name)
	}

	// Overwriting existing copies is fine.
	require.NoError(t, WriteAssets(dir))
}
