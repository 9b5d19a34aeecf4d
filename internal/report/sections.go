package report

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/gwastro/pygrb-results-page/constants"
	"github.com/gwastro/pygrb-results-page/internal/config"
)

// onsourceDir is the results subdirectory holding on-source artifacts, the
// counterpart of the OFFTRIAL_* directories.
const onsourceDir = "ONSOURCE"

// plotFile names a run-level plot produced by the post-processing workflow.
func (a *Assembler) plotFile(tag string) string {
	return fmt.Sprintf("GRB%s_%s.png", a.cfg.GRBName, tag)
}

// summarySection emits the run metadata table, the segment availability
// plot when present, and a link to the analysis configuration file.
func (a *Assembler) summarySection(doc *Document) error {
	cfg := a.cfg

	var rows strings.Builder
	writeRow := func(label, value string) {
		fmt.Fprintf(&rows, "<tr><th>%s</th><td>%s</td></tr>\n",
			html.EscapeString(label), html.EscapeString(value))
	}

	writeRow("GRB", cfg.GRBName)
	writeRow("Interferometers", cfg.IfoTag)
	writeRow("Trigger time (GPS)", fmt.Sprintf("%d", cfg.StartTime))

	if cfg.RA != nil && cfg.Dec != nil {
		writeRow("Right ascension", fmt.Sprintf("%.4f", *cfg.RA))
		writeRow("Declination", fmt.Sprintf("%.4f", *cfg.Dec))
	}

	// Exactly one localization error is shown, matching the run's mode.
	switch loc := cfg.Localization(); loc.Mode {
	case config.ModeGrid:
		writeRow("Sky grid error (degrees)", fmt.Sprintf("%g", loc.Error))
	case config.ModeIPN:
		writeRow("IPN error box (square degrees)", fmt.Sprintf("%g", loc.Error))
	}

	if cfg.TimeSlides {
		writeRow("Background estimation", "time slides")
	}

	doc.Append("<table class=\"summary\">\n" + rows.String() + "</table>")

	a.includeSegmentPlot(doc)

	return a.includeConfigFile(doc)
}

// includeSegmentPlot copies the segment availability plot into the output
// directory and references it. A missing plot is tolerated: the section is
// emitted without it and a warning goes to the error stream.
func (a *Assembler) includeSegmentPlot(doc *Document) {
	src := a.cfg.SegPlot
	if src == "" || !a.files.FileExists(src) {
		a.logger.WithField("path", src).Warn("Segment availability plot not found, omitting from summary")

		return
	}

	name := filepath.Base(src)
	if err := a.files.CopyFile(src, filepath.Join(a.cfg.OutputPath, name)); err != nil {
		a.logger.WithError(err).Warn("Failed to copy segment availability plot, omitting from summary")

		return
	}

	doc.SubHeading("Science segment availability")
	doc.Image(name, "segment availability")
}

// includeConfigFile copies the analysis configuration file into the output
// directory, unless an identical copy already sits there, and links it.
func (a *Assembler) includeConfigFile(doc *Document) error {
	src := a.cfg.ConfigFile
	name := filepath.Base(src)
	dst := filepath.Join(a.cfg.OutputPath, name)

	same, err := a.files.SameContent(src, dst)
	if err != nil {
		return err
	}

	if !same {
		if err := a.files.CopyFile(src, dst); err != nil {
			return err
		}
	}

	doc.Link(name, "Analysis configuration file")

	return nil
}

// offsourceTriggersSection shows the off-source triggers as a function of
// time, the background the search significance is judged against.
func (a *Assembler) offsourceTriggersSection(doc *Document) error {
	doc.Image(a.plotFile("offsource_triggers_vs_time"), "offsource triggers versus time")
	doc.Image(a.plotFile("offsource_triggers_vs_time_zoom"), "offsource triggers versus time (zoom)")

	return nil
}

// signalConsistencySection shows the chi-squared and null/single-detector
// SNR diagnostics, each preceded by the fixed legend.
func (a *Assembler) signalConsistencySection(doc *Document) error {
	doc.SubHeading("Chi-squared tests")
	doc.Text(constants.SignalConsistencyLegend)

	for _, tag := range []string{"chisq", "bank_chisq", "auto_chisq"} {
		doc.Image(a.plotFile(tag+"_vs_snr"), tag+" versus coherent SNR")
	}

	doc.SubHeading("Null stream and single-detector SNR")
	doc.Text(constants.SignalConsistencyLegend)

	for _, tag := range []string{"null_snr_vs_snr", "single_snr_vs_snr"} {
		doc.Image(a.plotFile(tag), strings.ReplaceAll(tag, "_", " "))
	}

	return nil
}

// foundMissedSection shows the recovery of the detection injection sets,
// preceded by the fixed four-point legend.
func (a *Assembler) foundMissedSection(doc *Document) error {
	doc.List(constants.FoundMissedLegendItems)

	for _, tag := range a.cfg.DetectionSets {
		doc.SubHeading(tag)
		doc.Image(a.plotFile(tag+"_found_missed_vs_time"), tag+" found/missed versus time")
		doc.Image(a.plotFile(tag+"_found_missed_vs_mass"), tag+" found/missed versus total mass")
	}

	return nil
}

// injectionRecoverySection shows recovered sky positions for the tuning
// injection sets of a sky-grid or IPN run.
func (a *Assembler) injectionRecoverySection(doc *Document) error {
	for _, tag := range a.cfg.TuningSets {
		doc.SubHeading(tag)
		doc.Image(a.plotFile(tag+"_sky_error"), tag+" recovered sky position error")
		doc.Image(a.plotFile(tag+"_recovery_efficiency"), tag+" recovery efficiency")
	}

	return nil
}

// loudestEventsSection links the loudest off-source event tables, one per
// mass bin in the configured order.
func (a *Assembler) loudestEventsSection(doc *Document) error {
	for _, bin := range a.cfg.MassBins {
		doc.SubHeading(fmt.Sprintf("Mass bin %g-%g", bin.Low, bin.High))
		doc.Link(fmt.Sprintf("GRB%s_loudest_offsource_m%g-%g.html", a.cfg.GRBName, bin.Low, bin.High),
			"Loudest off-source events table")
	}

	return nil
}

// exclusionSection builds the exclusion-distance content for one trial
// directory. The reduced and onsource flags select plot variants; both are
// false for the ordinary off-source trials.
func (a *Assembler) exclusionSection(trial string, reduced, onsource bool) func(*Document) error {
	return func(doc *Document) error {
		variant := ""
		if reduced {
			variant = "_reduced"
		}

		if onsource {
			trial = onsourceDir
		}

		for _, bin := range a.cfg.MassBins {
			doc.SubHeading(fmt.Sprintf("Mass bin %g-%g", bin.Low, bin.High))

			for _, tag := range a.cfg.DetectionSets {
				doc.Image(
					fmt.Sprintf("%s/GRB%s_%s_exclusion_m%g-%g%s.png",
						trial, a.cfg.GRBName, tag, bin.Low, bin.High, variant),
					fmt.Sprintf("%s exclusion distance, mass bin %g-%g", tag, bin.Low, bin.High))
			}
		}

		doc.Link(fmt.Sprintf("%s/GRB%s_loudest_events.html", trial, a.cfg.GRBName),
			"Loudest event details")

		return nil
	}
}

// onsourceTriggersSection shows the full-data (on-source) triggers versus
// time; only reachable for an open-box run.
func (a *Assembler) onsourceTriggersSection(doc *Document) error {
	doc.Image(a.plotFile("onsource_triggers_vs_time"), "full data triggers versus time")

	return nil
}
