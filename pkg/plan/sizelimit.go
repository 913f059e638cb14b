package plan

import (
	"regexp"
	"strconv"
	"strings"
)

// sizeLimitRe matches size-limit phrases in a user utterance, e.g.
// "under 500 MB", "max 2GB", "not more than 1.5 gb", "up to 800 megabytes".
var sizeLimitRe = regexp.MustCompile(
	`(?i)\b(?:under|below|less\s+than|max(?:imum)?|not\s+more\s+than|up\s+to|at\s+most)\s+(\d+(?:\.\d+)?)\s*(gb|gigabytes?|gigs?|mb|megabytes?|megs?)\b`)

// ParseSizeLimit extracts an explicit dataset size limit from the utterance,
// normalized to gigabytes. The deterministic parse takes precedence over
// whatever value the LLM put in the plan. Returns ok=false when the
// utterance states no limit.
func ParseSizeLimit(utterance string) (gb float64, ok bool) {
	m := sizeLimitRe.FindStringSubmatch(utterance)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil || value <= 0 {
		return 0, false
	}

	unit := strings.ToLower(m[2])
	if strings.HasPrefix(unit, "m") {
		// Decimal units: 500 MB reads as 0.5 GB.
		value /= 1000
	}
	return value, true
}

// ApplySizeLimit overrides the plan's max_dataset_size_gb with the value
// parsed from the utterance, clamped to the hard ceiling.
func (p *Plan) ApplySizeLimit(utterance string) {
	if gb, ok := ParseSizeLimit(utterance); ok {
		if gb > HardSizeCeilingGB {
			gb = HardSizeCeilingGB
		}
		p.MaxDatasetSizeGB = gb
	}
}
