package report

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gwastro/pygrb-results-page/constants"
	"github.com/gwastro/pygrb-results-page/internal/config"
)

// Assembler maps one run configuration to the ordered sequence of page
// sections and drives the section content builders.
type Assembler struct {
	cfg    *config.RunConfig
	files  *FileManager
	logger logrus.FieldLogger
}

// NewAssembler creates an assembler for one run.
func NewAssembler(cfg *config.RunConfig, logger logrus.FieldLogger) *Assembler {
	return &Assembler{
		cfg:    cfg,
		files:  NewFileManager(logger),
		logger: logger.WithField("component", "assembler"),
	}
}

// Build produces the results page for the run. Section order and the
// conditions under which optional sections appear are fixed:
//
//   - summary, off-source triggers, signal consistency and loudest events
//     are always present;
//   - found/missed injections appears iff detection injection sets exist;
//   - injection recovery appears iff tuning injection sets exist and the
//     run was localized by sky grid or IPN;
//   - one results section per discovered off-source trial, in order;
//   - the on-source sections appear only for an open-box run.
//
// The only I/O during assembly is the copying of the segment plot and the
// configuration file into the output directory.
func (a *Assembler) Build(trials []string) (*Document, error) {
	cfg := a.cfg

	banner := constants.ClosedBoxBanner
	if cfg.OpenBox {
		banner = constants.OpenBoxBanner
	}

	doc := NewDocument(fmt.Sprintf("GRB %s: %s", cfg.GRBName, banner))

	if err := a.addSection(doc, constants.SectionSummary, a.summarySection); err != nil {
		return nil, err
	}

	if err := a.addSection(doc, constants.SectionOffsourceTriggers, a.offsourceTriggersSection); err != nil {
		return nil, err
	}

	if err := a.addSection(doc, constants.SectionSignalConsistency, a.signalConsistencySection); err != nil {
		return nil, err
	}

	if len(cfg.DetectionSets) > 0 {
		if err := a.addSection(doc, constants.SectionFoundMissed, a.foundMissedSection); err != nil {
			return nil, err
		}
	}

	if len(cfg.TuningSets) > 0 && cfg.Localization().Mode != config.ModePoint {
		if err := a.addSection(doc, constants.SectionInjectionRecovery, a.injectionRecoverySection); err != nil {
			return nil, err
		}
	}

	if err := a.addSection(doc, constants.SectionLoudestEvents, a.loudestEventsSection); err != nil {
		return nil, err
	}

	for _, trial := range trials {
		title := fmt.Sprintf(constants.SectionTrialResultsFormat, prettifyTrialName(trial))
		if err := a.addSection(doc, title, a.exclusionSection(trial, false, false)); err != nil {
			return nil, err
		}
	}

	if cfg.OpenBox {
		doc.Rule()

		if err := a.addSection(doc, constants.SectionOnsourceTriggers, a.onsourceTriggersSection); err != nil {
			return nil, err
		}

		// TODO: the on-source results are still rendered through the
		// off-source exclusion layout (onsource=false); switch once the
		// post-processing emits dedicated on-source exclusion plots.
		if err := a.addSection(doc, constants.SectionOnsourceResults, a.exclusionSection(onsourceDir, false, false)); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// addSection is the single place a section enters the document, keeping the
// toggle index monotonic regardless of which optional branches ran.
func (a *Assembler) addSection(doc *Document, title string, fill func(*Document) error) error {
	index := doc.BeginSection(title)

	if err := fill(doc); err != nil {
		return fmt.Errorf("failed to build section %q: %w", title, err)
	}

	doc.EndSection()

	a.logger.WithFields(logrus.Fields{"section": title, "toggle_id": index}).Debug("Section added")

	return nil
}

// prettifyTrialName turns OFFTRIAL_2 into "Offtrial 2" for the heading.
// A Caser carries state, so a fresh one is used per call.
func prettifyTrialName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
