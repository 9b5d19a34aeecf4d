package report

import (
	"time"

	"github.com/gwastro/pygrb-results-page/internal/config"
)

// Manifest is the machine-readable companion of the HTML page, written as
// summary.json next to it so downstream tooling can inspect what a run
// published without scraping markup.
type Manifest struct {
	GRBName     string           `json:"grb_name"`
	IfoTag      string           `json:"ifo_tag"`
	StartTime   int64            `json:"start_time"`
	OpenBox     bool             `json:"open_box"`
	GeneratedAt time.Time        `json:"generated_at"`
	MassBins    []config.MassBin `json:"mass_bins"`
	Trials      []string         `json:"trials"`
	Sections    []SectionInfo    `json:"sections"`
}

// NewManifest summarizes an assembled document.
func NewManifest(cfg *config.RunConfig, doc *Document, trials []string) Manifest {
	return Manifest{
		GRBName:     cfg.GRBName,
		IfoTag:      cfg.IfoTag,
		StartTime:   cfg.StartTime,
		OpenBox:     cfg.OpenBox,
		GeneratedAt: time.Now().UTC(),
		MassBins:    cfg.MassBins,
		Trials:      trials,
		Sections:    doc.Sections(),
	}
}
