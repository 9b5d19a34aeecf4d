package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gwastro/pygrb-results-page/constants"
)

// LocalizationMode identifies how the GRB was localized on the sky.
type LocalizationMode int

const (
	// ModePoint is a plain right-ascension/declination localization.
	ModePoint LocalizationMode = iota
	// ModeGrid is a sky-grid search with an error radius.
	ModeGrid
	// ModeIPN is an Interplanetary Network error-box localization.
	ModeIPN
)

// String returns the mode name for logging.
func (m LocalizationMode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModeIPN:
		return "ipn"
	default:
		return "point"
	}
}

// Localization is the run's sky-localization variant. Exactly one mode is
// active; the error value is meaningful for ModeGrid and ModeIPN only.
type Localization struct {
	Mode  LocalizationMode
	Error float64
}

// MassBin is one low/high slice of the total-mass parameter space. Bins are
// kept in the order they were given; they need not be disjoint or
// contiguous.
type MassBin struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// RunConfig describes one analysis run. It is resolved once at startup from
// the run-config file and command-line flags and is read-only afterwards.
type RunConfig struct {
	GRBName   string `yaml:"grb_name"`
	IfoTag    string `yaml:"ifo_tag"`
	StartTime int64  `yaml:"start_time"`

	RA  *float64 `yaml:"ra"`
	Dec *float64 `yaml:"dec"`

	// SkyError is the sky-grid error radius in degrees; nil when the run
	// did not use a sky grid.
	SkyError *float64 `yaml:"sky_error"`
	IPN      bool     `yaml:"ipn"`
	IPNError float64  `yaml:"ipn_error"`

	OpenBox    bool `yaml:"open_box"`
	TimeSlides bool `yaml:"time_slides"`

	MassBinSpec   string `yaml:"mass_bins"`
	InjectionTags string `yaml:"injection_tags"`
	TuningTags    string `yaml:"tuning_injection_tags"`

	ConfigFile string `yaml:"config_file"`
	SegPlot    string `yaml:"seg_plot"`
	OutputPath string `yaml:"output_path"`
	HTMLPath   string `yaml:"html_path"`

	// Derived fields, populated by Finalize.
	MassBins      []MassBin `yaml:"-"`
	DetectionSets []string  `yaml:"-"`
	TuningSets    []string  `yaml:"-"`
}

// LoadFile reads run settings from a YAML file into cfg. Flags applied
// afterwards override anything set here.
func LoadFile(path string, cfg *RunConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read run config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse run config %s: %w", path, err)
	}

	return nil
}

// Validate checks required settings and flag exclusivity.
func (c *RunConfig) Validate() error {
	if c.ConfigFile == "" {
		return fmt.Errorf(constants.ErrConfigFileRequired)
	}

	if c.IfoTag == "" {
		return fmt.Errorf(constants.ErrIfoTagRequired)
	}

	if c.HTMLPath == "" {
		return fmt.Errorf(constants.ErrHTMLPathRequired)
	}

	if c.SkyError != nil && c.IPN {
		return fmt.Errorf(constants.ErrGridIPNExclusive)
	}

	if c.IPN && c.IPNError <= 0 {
		return fmt.Errorf(constants.ErrIPNErrorRequired)
	}

	return nil
}

// Finalize validates the configuration, parses the delimited fields and
// resolves paths. Parsing failures here are fatal configuration errors;
// nothing downstream re-validates these inputs.
func (c *RunConfig) Finalize() error {
	if err := c.Validate(); err != nil {
		return err
	}

	bins, err := ParseMassBins(c.MassBinSpec)
	if err != nil {
		return err
	}

	c.MassBins = bins
	c.DetectionSets = ParseTagList(c.InjectionTags)
	c.TuningSets = ParseTagList(c.TuningTags)

	if c.OutputPath == "" {
		c.OutputPath = "."
	}

	c.OutputPath = filepath.Clean(c.OutputPath)
	c.HTMLPath = filepath.Clean(c.HTMLPath)

	return nil
}

// Localization returns the sky-localization variant for this run. Grid and
// IPN are mutually exclusive by validation, so the order of the checks does
// not matter.
func (c *RunConfig) Localization() Localization {
	switch {
	case c.IPN:
		return Localization{Mode: ModeIPN, Error: c.IPNError}
	case c.SkyError != nil:
		return Localization{Mode: ModeGrid, Error: *c.SkyError}
	default:
		return Localization{Mode: ModePoint}
	}
}
