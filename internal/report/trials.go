package report

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/gwastro/pygrb-results-page/constants"
)

// DiscoverTrials lists the off-source trial entries present in the output
// directory. Trials are identified by the OFFTRIAL_ naming convention and
// returned in lexicographic order, so OFFTRIAL_10 sorts before OFFTRIAL_2.
// That string ordering is the contract downstream sections rely on.
func DiscoverTrials(outdir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(outdir, constants.TrialPrefix+"*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list trials in %s: %w", outdir, err)
	}

	trials := make([]string, 0, len(matches))
	for _, match := range matches {
		trials = append(trials, filepath.Base(match))
	}

	sort.Strings(trials)

	return trials, nil
}
