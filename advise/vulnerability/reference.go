package vulnerability

import (
	"fmt"
	"strings"

	"github.com/advise-tools/advise/internal/cvss"
	"github.com/advise-tools/advise/internal/log"
)

// Reference points at a source of information about a vulnerability, optionally rating it with a scoring system.
// References are compared structurally.
type Reference struct {
	URL           string  `json:"url" yaml:"url"`
	ScoringSystem string  `json:"scoring_system,omitempty" yaml:"scoring_system,omitempty"`
	Severity      string  `json:"severity,omitempty" yaml:"severity,omitempty"`
	Score         float64 `json:"score,omitempty" yaml:"score,omitempty"`
	Vector        string  `json:"vector,omitempty" yaml:"vector,omitempty"`
}

func (r Reference) String() string {
	if r.ScoringSystem == "" {
		return r.URL
	}
	return fmt.Sprintf("%s (%s %s)", r.URL, r.ScoringSystem, r.rating())
}

func (r Reference) rating() string {
	switch {
	case r.Severity != "" && r.Score != 0:
		return fmt.Sprintf("%s/%.1f", r.Severity, r.Score)
	case r.Severity != "":
		return r.Severity
	case r.Score != 0:
		return fmt.Sprintf("%.1f", r.Score)
	}
	return "unrated"
}

// Rated returns the reference with its score and severity derived from the CVSS vector where they are missing.
// References without a usable vector are returned unchanged.
func (r Reference) Rated() Reference {
	if r.Score == 0 && r.Vector != "" {
		score, err := cvss.BaseScoreFromVector(r.Vector)
		if err != nil {
			log.Nested("reference", r.URL).Debugf("unable to score vector=%q: %+v", r.Vector, err)
			return r
		}
		r.Score = score
	}
	if r.Severity == "" {
		r.Severity = cvss.SeverityFromBaseScore(r.Score)
	}
	return r
}

var severityRanks = map[string]int{
	"NEGLIGIBLE": 1,
	"LOW":        2,
	"MEDIUM":     3,
	"MODERATE":   3,
	"HIGH":       4,
	"CRITICAL":   5,
}

// severityRank orders severity labels; unknown labels rank below every known one.
func (r Reference) severityRank() int {
	return severityRanks[strings.ToUpper(strings.TrimSpace(r.Severity))]
}

func (r Reference) ratesAbove(other Reference) bool {
	if a, b := r.severityRank(), other.severityRank(); a != b {
		return a > b
	}
	return r.Score > other.Score
}
