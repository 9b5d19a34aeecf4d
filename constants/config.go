package constants

// Default configuration values
const (
	// File and data constants
	DefaultFilePermissions = 0644
	DefaultDirPermissions  = 0755

	// Publish collision handling
	PublishSuffixLength   = 8
	PublishSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Box-state suffixes appended to the published directory name
	OpenBoxSuffix   = "_OPEN"
	ClosedBoxSuffix = "_CLOSED"

	// Off-source trial directories produced by the analysis workflow
	TrialPrefix = "OFFTRIAL_"
)

// Default filenames
const (
	SummaryHTMLFile  = "summary.html"
	SummaryJSONFile  = "summary.json"
	StylesheetFile   = "style.css"
	ToggleScriptFile = "toggle.js"
)

// Error messages
const (
	ErrConfigFileRequired = "--config-file is required"
	ErrIfoTagRequired     = "--ifo-tag is required"
	ErrHTMLPathRequired   = "--html-path is required"
	ErrGridIPNExclusive   = "--sky-error and --ipn are mutually exclusive"
	ErrIPNErrorRequired   = "--ipn-error is required when --ipn is set"
)
