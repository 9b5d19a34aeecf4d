package constants

// Section headings. Their order of appearance on the page is owned by the
// assembler; the headings themselves are fixed.
const (
	SectionSummary           = "Summary information"
	SectionOffsourceTriggers = "Offsource triggers versus time"
	SectionSignalConsistency = "Signal consistency plots"
	SectionFoundMissed       = "Found/missed injections"
	SectionInjectionRecovery = "Injection recovery"
	SectionLoudestEvents     = "Loudest offsource events"
	SectionOnsourceTriggers  = "Full data triggers versus time"
	SectionOnsourceResults   = "Results for Onsource"

	// SectionTrialResultsFormat takes the prettified trial name.
	SectionTrialResultsFormat = "Results for %s"
)

// Page banner markers chosen by the open-box flag.
const (
	OpenBoxBanner   = "OPEN BOX PAGE"
	ClosedBoxBanner = "CLOSED BOX PAGE"
)

// SignalConsistencyLegend is the fixed legend shown above the chi-squared
// and SNR subsections. The wording is a static contract of the report and
// must be reproduced verbatim.
const SignalConsistencyLegend = "In the plots below, " +
	"black dots represent off-source triggers and red crosses represent " +
	"software injections. The solid black line shows the veto cut applied " +
	"by the search; the dashed lines show contours of constant coherent " +
	"new SNR."

// FoundMissedLegendItems are the fixed bullet points shown above the
// found/missed injection plots, reproduced verbatim.
var FoundMissedLegendItems = []string{
	"Red crosses are injections missed by the search.",
	"Coloured circles are injections found by the search.",
	"The colour bar gives the coherent SNR with which a found injection was recovered.",
	"Black-edged circles are found injections that were vetoed by the signal consistency tests.",
}
