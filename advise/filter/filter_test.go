package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advise-tools/advise/advise/advisor"
	"github.com/advise-tools/advise/advise/defect"
	"github.com/advise-tools/advise/advise/issue"
	"github.com/advise-tools/advise/advise/vulnerability"
)

func capability(c advisor.Capability) *advisor.Capability {
	return &c
}

var (
	vulnResult = advisor.Result{
		Advisor:         advisor.Details{Name: "OSV", Capabilities: []advisor.Capability{advisor.VulnerabilitiesCapability}},
		Vulnerabilities: []vulnerability.Vulnerability{{ID: "CVE-1"}},
		Summary: advisor.Summary{Issues: []issue.Issue{
			{Source: "OSV", Message: "rate limited", Severity: issue.WarningSeverity},
		}},
	}
	defectResult = advisor.Result{
		Advisor: advisor.Details{Name: "GitHubDefects", Capabilities: []advisor.Capability{advisor.DefectsCapability}},
		Defects: []defect.Defect{{ID: "GH-1"}},
		Summary: advisor.Summary{Issues: []issue.Issue{
			{Source: "GitHubDefects", Message: "auth failed", Severity: issue.ErrorSeverity},
		}},
	}
	emptyResult = advisor.Result{
		Advisor: advisor.Details{Name: "VulnerableCode", Capabilities: []advisor.Capability{advisor.VulnerabilitiesCapability}},
	}
)

func TestPredefinedFilters(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected map[string]bool
	}{
		{
			name:     "with vulnerabilities",
			filter:   ResultsWithVulnerabilities,
			expected: map[string]bool{"OSV": true, "GitHubDefects": false, "VulnerableCode": false},
		},
		{
			name:     "with defects",
			filter:   ResultsWithDefects,
			expected: map[string]bool{"OSV": false, "GitHubDefects": true, "VulnerableCode": false},
		},
		{
			name:     "with any issue",
			filter:   ResultsWithIssues(issue.HintSeverity, nil),
			expected: map[string]bool{"OSV": true, "GitHubDefects": true, "VulnerableCode": false},
		},
		{
			name:     "zero value issues filter",
			filter:   Issues{},
			expected: map[string]bool{"OSV": true, "GitHubDefects": true, "VulnerableCode": false},
		},
		{
			name:     "with error issues",
			filter:   ResultsWithIssues(issue.ErrorSeverity, nil),
			expected: map[string]bool{"OSV": false, "GitHubDefects": true, "VulnerableCode": false},
		},
		{
			name:     "with issues from vulnerability advisors",
			filter:   ResultsWithIssues(issue.HintSeverity, capability(advisor.VulnerabilitiesCapability)),
			expected: map[string]bool{"OSV": true, "GitHubDefects": false, "VulnerableCode": false},
		},
		{
			name:     "all of vulnerabilities and warnings",
			filter:   All{Vulnerabilities{}, Issues{MinSeverity: issue.WarningSeverity}},
			expected: map[string]bool{"OSV": true, "GitHubDefects": false, "VulnerableCode": false},
		},
		{
			name:     "any of vulnerabilities or defects",
			filter:   Any{Vulnerabilities{}, Defects{}},
			expected: map[string]bool{"OSV": true, "GitHubDefects": true, "VulnerableCode": false},
		},
		{
			name:     "not vulnerabilities",
			filter:   Not{Filter: Vulnerabilities{}},
			expected: map[string]bool{"OSV": false, "GitHubDefects": true, "VulnerableCode": true},
		},
		{
			name:     "empty all matches everything",
			filter:   All{},
			expected: map[string]bool{"OSV": true, "GitHubDefects": true, "VulnerableCode": true},
		},
		{
			name: "func adapter",
			filter: Func{Name: "named-osv", Fn: func(r advisor.Result) bool {
				return r.Advisor.Name == "OSV"
			}},
			expected: map[string]bool{"OSV": true, "GitHubDefects": false, "VulnerableCode": false},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, r := range []advisor.Result{vulnResult, defectResult, emptyResult} {
				assert.Equal(t, test.expected[r.Advisor.Name], test.filter.Matches(r), "advisor %s", r.Advisor.Name)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr     string
		expected Filter
		str      string
	}{
		{
			expr:     "",
			expected: All(nil),
			str:      "",
		},
		{
			expr:     "vulnerabilities",
			expected: Vulnerabilities{},
			str:      "vulnerabilities",
		},
		{
			expr:     " Defects ",
			expected: Defects{},
			str:      "defects",
		},
		{
			expr:     "issues",
			expected: Issues{MinSeverity: issue.HintSeverity},
			str:      "issues",
		},
		{
			expr:     "issues:WARNING:vulnerabilities",
			expected: Issues{MinSeverity: issue.WarningSeverity, Capability: capability(advisor.VulnerabilitiesCapability)},
			str:      "issues:warning:vulnerabilities",
		},
		{
			expr:     "vulnerabilities,issues:error",
			expected: All{Vulnerabilities{}, Issues{MinSeverity: issue.ErrorSeverity}},
			str:      "vulnerabilities,issues:error",
		},
		{
			expr:     "vulnerabilities|defects,!issues",
			expected: All{Any{Vulnerabilities{}, Defects{}}, Not{Filter: Issues{MinSeverity: issue.HintSeverity}}},
			str:      "vulnerabilities|defects,!issues",
		},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			actual, err := Parse(test.expr)
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
			assert.Equal(t, test.str, actual.String())

			reparsed, err := Parse(actual.String())
			require.NoError(t, err)
			for _, r := range []advisor.Result{vulnResult, defectResult, emptyResult} {
				assert.Equal(t, actual.Matches(r), reparsed.Matches(r))
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		expr     string
		contains []string
	}{
		{expr: "licenses", contains: []string{`unknown filter "licenses"`}},
		{expr: "vulnerabilities:high", contains: []string{"takes no arguments"}},
		{expr: "issues:fatal", contains: []string{"unknown issue severity"}},
		{expr: "issues:error:licenses", contains: []string{"unknown advisor capability"}},
		{expr: "issues:error:defects:extra", contains: []string{"at most"}},
		{expr: "bogus,issues:fatal", contains: []string{`unknown filter "bogus"`, "unknown issue severity"}},
	}

	for _, test := range tests {
		t.Run(test.expr, func(t *testing.T) {
			_, err := Parse(test.expr)
			require.Error(t, err)
			for _, c := range test.contains {
				assert.Contains(t, err.Error(), c)
			}
		})
	}
}

func TestZeroValueFilters(t *testing.T) {
	for _, r := range []advisor.Result{vulnResult, defectResult, emptyResult} {
		assert.False(t, Not{}.Matches(r), r.Advisor.Name)
		assert.False(t, Func{Name: "unset"}.Matches(r), r.Advisor.Name)
		assert.True(t, OrAll(nil).Matches(r), r.Advisor.Name)
	}

	assert.Equal(t, "!", Not{}.String())
	assert.Equal(t, "unset", Func{Name: "unset"}.String())
	assert.Equal(t, Defects{}, OrAll(Defects{}))
}
