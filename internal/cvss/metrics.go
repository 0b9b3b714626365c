package cvss

import (
	"fmt"
	"math"
	"strings"

	"github.com/facebookincubator/nvdtools/cvss2"
	"github.com/facebookincubator/nvdtools/cvss3"
)

const (
	v30Prefix = "CVSS:3.0/"
	v31Prefix = "CVSS:3.1/"
)

// BaseScoreFromVector computes the base score of a CVSS v2 or v3.x vector.
func BaseScoreFromVector(vector string) (float64, error) {
	vector = strings.TrimSpace(vector)
	switch {
	case vector == "":
		return 0, fmt.Errorf("empty CVSS vector")
	case strings.HasPrefix(vector, v30Prefix), strings.HasPrefix(vector, v31Prefix):
		v, err := cvss3.VectorFromString(vector)
		if err != nil && strings.HasPrefix(vector, v31Prefix) {
			// the 3.1 base metrics are the same as 3.0
			v, err = cvss3.VectorFromString(v30Prefix + strings.TrimPrefix(vector, v31Prefix))
		}
		if err != nil {
			return 0, fmt.Errorf("unable to parse CVSS v3 vector: %w", err)
		}
		return roundScore(v.BaseScore()), nil
	case strings.HasPrefix(vector, "CVSS:"):
		return 0, fmt.Errorf("unsupported CVSS version: %q", vector)
	default:
		// should be CVSS v2.0 or is invalid
		v, err := cvss2.VectorFromString(strings.TrimSuffix(strings.TrimPrefix(vector, "("), ")"))
		if err != nil {
			return 0, fmt.Errorf("unable to parse CVSS v2 vector: %w", err)
		}
		return roundScore(v.BaseScore()), nil
	}
}

// SeverityFromBaseScore returns the qualitative severity rating of a base score (empty when the score is out of range).
func SeverityFromBaseScore(bs float64) string {
	switch {
	case bs > 10.0:
		return ""
	case bs >= 9.0:
		return "CRITICAL"
	case bs >= 7.0:
		return "HIGH"
	case bs >= 4.0:
		return "MEDIUM"
	case bs >= 0.1:
		return "LOW"
	case bs > 0:
		return "NEGLIGIBLE"
	}
	return ""
}

// roundScore rounds the score to the nearest tenth based on first.org rounding rules
// see https://www.first.org/cvss/v3.1/specification-document#Appendix-A---Floating-Point-Rounding
func roundScore(score float64) float64 {
	intInput := int(math.Round(score * 100000))
	if intInput%10000 == 0 {
		return float64(intInput) / 100000.0
	}
	return (math.Floor(float64(intInput)/10000.0) + 1) / 10.0
}
