package internal

import (
	"testing"
	"time"

	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/defect"
	"github.com/advise-tools/advise/advise/issue"
	"github.com/advise-tools/advise/advise/pkg"
	"github.com/advise-tools/advise/advise/run"
	"github.com/advise-tools/advise/advise/vulnerability"
)

var (
	StartTime = time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	EndTime   = StartTime.Add(90 * time.Second)

	Lodash  = pkg.MustParseIdentifier("npm::lodash:4.17.20")
	Jackson = pkg.MustParseIdentifier("maven:com.fasterxml.jackson.core:jackson-databind:2.9.8")
	Clean   = pkg.MustParseIdentifier("npm::left-pad:1.3.0")
)

func strRef(s string) *string {
	return &s
}

// GenerateRun returns a run with three packages: one with a vulnerability reported by two advisors, one with a
// defect and an issue, and one without findings.
func GenerateRun(t *testing.T) run.Run {
	t.Helper()

	ossIndex := advisor.Details{Name: "oss-index", Capabilities: []advisor.Capability{advisor.VulnerabilitiesCapability}}
	osv := advisor.Details{Name: "osv", Capabilities: []advisor.Capability{advisor.VulnerabilitiesCapability}}
	github := advisor.Details{Name: "github-defects", Capabilities: []advisor.Capability{advisor.DefectsCapability}}

	summary := advisor.Summary{StartTime: StartTime, EndTime: EndTime}

	results := map[pkg.Identifier][]advisor.Result{
		Lodash: {
			{
				Advisor: ossIndex,
				Summary: summary,
				Vulnerabilities: []vulnerability.Vulnerability{
					{
						ID:      "CVE-2021-23337",
						Summary: strRef("Command injection in lodash"),
						References: []vulnerability.Reference{
							{URL: "https://ossindex.sonatype.org/vulnerability/CVE-2021-23337", ScoringSystem: "CVSS3", Severity: "HIGH", Score: 7.2},
						},
					},
				},
			},
			{
				Advisor: osv,
				Summary: summary,
				Vulnerabilities: []vulnerability.Vulnerability{
					{
						ID: "CVE-2021-23337",
						References: []vulnerability.Reference{
							{URL: "https://osv.dev/vulnerability/GHSA-35jh-r3h4-6jhm"},
						},
					},
				},
			},
		},
		Jackson: {
			{
				Advisor: github,
				Summary: advisor.Summary{
					StartTime: StartTime,
					EndTime:   EndTime,
					Issues: []issue.Issue{
						{Timestamp: StartTime, Source: "github-defects", Message: "rate limit reached", Severity: issue.WarningSeverity},
					},
				},
				Defects: []defect.Defect{
					{ID: "2798", URL: "https://github.com/FasterXML/jackson-databind/issues/2798", Title: "Block one more gadget type", State: "closed", Severity: "low"},
				},
			},
		},
		Clean: {
			{Advisor: ossIndex, Summary: summary},
		},
	}

	return run.New(StartTime, EndTime, run.Environment{ToolVersion: "1.0.0", OS: "linux/amd64"}, run.Configuration{}, results)
}
