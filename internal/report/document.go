package report

import (
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/gwastro/pygrb-results-page/constants"
	"github.com/gwastro/pygrb-results-page/internal/report/assets"
)

var pageTemplate = template.Must(template.ParseFS(assets.FS, "page.html"))

// SectionInfo records one emitted section. Toggle identifiers are assigned
// by the document in emission order, starting at 0, with no gaps.
type SectionInfo struct {
	Title    string `json:"title"`
	ToggleID int    `json:"toggle_id"`
}

// Document accumulates the markup of one results page. It is owned by the
// assembler during construction and serialized exactly once via Render.
type Document struct {
	title    string
	body     strings.Builder
	sections []SectionInfo
	open     bool
}

// NewDocument creates an empty page with the given banner title.
func NewDocument(title string) *Document {
	return &Document{title: title}
}

// Title returns the page banner title.
func (d *Document) Title() string {
	return d.title
}

// Sections returns the sections emitted so far, in emission order.
func (d *Document) Sections() []SectionInfo {
	return d.sections
}

// ToggleID derives the collapse identifier for a section index.
func ToggleID(index int) string {
	return fmt.Sprintf("section-%d", index)
}

// BeginSection closes any open section, emits a collapsible heading and
// opens the section's content container. It is the only place a toggle
// index is assigned.
func (d *Document) BeginSection(title string) int {
	d.EndSection()

	index := len(d.sections)
	d.sections = append(d.sections, SectionInfo{Title: title, ToggleID: index})

	id := ToggleID(index)
	fmt.Fprintf(&d.body, "<div class=\"section\">\n")
	fmt.Fprintf(&d.body, "<h2 class=\"section-heading\" onclick=\"toggleSection('%s')\">%s</h2>\n",
		id, html.EscapeString(title))
	fmt.Fprintf(&d.body, "<div id=%q class=\"section-content\">\n", id)
	d.open = true

	return index
}

// EndSection closes the currently open section container, if any.
func (d *Document) EndSection() {
	if !d.open {
		return
	}

	d.body.WriteString("</div>\n</div>\n")
	d.open = false
}

// Append adds a raw, pre-built markup fragment to the page.
func (d *Document) Append(markup string) {
	d.body.WriteString(markup)
	d.body.WriteString("\n")
}

// Text adds an escaped paragraph.
func (d *Document) Text(s string) {
	fmt.Fprintf(&d.body, "<p>%s</p>\n", html.EscapeString(s))
}

// SubHeading adds an escaped third-level heading within a section.
func (d *Document) SubHeading(s string) {
	fmt.Fprintf(&d.body, "<h3>%s</h3>\n", html.EscapeString(s))
}

// Image adds an inline image reference relative to the page.
func (d *Document) Image(src, alt string) {
	fmt.Fprintf(&d.body, "<a href=%q><img src=%q alt=%q></a>\n", src, src, html.EscapeString(alt))
}

// Link adds a hyperlink with an escaped label.
func (d *Document) Link(href, label string) {
	fmt.Fprintf(&d.body, "<p><a href=%q>%s</a></p>\n", href, html.EscapeString(label))
}

// List adds an unordered legend list with escaped items.
func (d *Document) List(items []string) {
	d.body.WriteString("<ul class=\"legend\">\n")

	for _, item := range items {
		fmt.Fprintf(&d.body, "<li>%s</li>\n", html.EscapeString(item))
	}

	d.body.WriteString("</ul>\n")
}

// Rule adds the visual separator used between the closed-box and open-box
// halves of the page.
func (d *Document) Rule() {
	d.EndSection()
	d.body.WriteString("<hr class=\"box-separator\">\n")
}

// Render closes any open containers and serializes the full page.
func (d *Document) Render() (string, error) {
	d.EndSection()

	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: d.title,
		Body:  template.HTML(d.body.String()), //nolint:gosec // Fragments are escaped as they are appended.
	}

	var out strings.Builder
	if err := pageTemplate.ExecuteTemplate(&out, "page.html", data); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}

	return out.String(), nil
}

// WriteAssets writes the embedded stylesheet and toggle script into dir,
// overwriting existing copies. The publisher later carries them from there
// into the published tree.
func WriteAssets(dir string) error {
	for _, name := range []string{constants.StylesheetFile, constants.ToggleScriptFile} {
		data, err := assets.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read embedded asset %s: %w", name, err)
		}

		target := filepath.Join(dir, name)
		if err := os.WriteFile(target, data, constants.DefaultFilePermissions); err != nil {
			return fmt.Errorf("failed to write asset %s: %w", target, err)
		}
	}

	return nil
}
