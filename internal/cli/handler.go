package cli

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/gwastro/pygrb-results-page/constants"
	"github.com/gwastro/pygrb-results-page/internal/config"
	"github.com/gwastro/pygrb-results-page/internal/publish"
	"github.com/gwastro/pygrb-results-page/internal/report"
)

// Handler drives one invocation: assemble the page, write the outputs, then
// publish the output tree.
type Handler struct {
	logger logrus.FieldLogger
}

// NewHandler creates a new CLI handler.
func NewHandler(logger logrus.FieldLogger) *Handler {
	return &Handler{
		logger: logger.WithField("component", "cli_handler"),
	}
}

// Run executes the page build and publication for one run configuration.
func (h *Handler) Run(cfg *config.RunConfig) error {
	h.logger.WithFields(logrus.Fields{
		"grb":      cfg.GRBName,
		"open_box": cfg.OpenBox,
		"mode":     cfg.Localization().Mode.String(),
	}).Info("Building results page")

	trials, err := report.DiscoverTrials(cfg.OutputPath)
	if err != nil {
		return err
	}

	h.logger.WithField("trials", trials).Info("Discovered off-source trials")

	assembler := report.NewAssembler(cfg, h.logger)

	doc, err := assembler.Build(trials)
	if err != nil {
		return fmt.Errorf("failed to assemble results page: %w", err)
	}

	html, err := doc.Render()
	if err != nil {
		return err
	}

	files := report.NewFileManager(h.logger)

	if err := files.SaveHTML(filepath.Join(cfg.OutputPath, constants.SummaryHTMLFile), html); err != nil {
		return err
	}

	manifest := report.NewManifest(cfg, doc, trials)
	if err := files.SaveJSON(filepath.Join(cfg.OutputPath, constants.SummaryJSONFile), manifest); err != nil {
		return err
	}

	// The publisher picks the page assets up from the directory above the
	// output tree.
	if err := report.WriteAssets(filepath.Dir(cfg.OutputPath)); err != nil {
		return err
	}

	publisher := publish.NewPublisher(h.logger)

	target, err := publisher.Publish(cfg.OutputPath, cfg.HTMLPath, cfg.OpenBox)
	if err != nil {
		return fmt.Errorf("failed to publish results page: %w", err)
	}

	h.logger.WithField("path", target).Info("Results page complete")

	return nil
}
