// Package assets embeds the static files shipped alongside every results
// page: the page skeleton, the stylesheet and the section toggle script.
package assets

import "embed"

//go:embed page.html style.css toggle.js
var FS embed.FS
