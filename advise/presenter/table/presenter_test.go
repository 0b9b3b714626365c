package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advise-tools/advise/advise/filter"
	"github.com/advise-tools/advise/advise/presenter/internal"
	"github.com/advise-tools/advise/advise/presenter/models"
)

func present(t *testing.T, pres *Presenter) string {
	t.Helper()
	var buffer bytes.Buffer
	require.NoError(t, pres.Present(&buffer))
	return stripansi.Strip(buffer.String())
}

func TestTablePresenter(t *testing.T) {
	pres := NewPresenter(models.PresenterConfig{Run: internal.GenerateRun(t)}, false)
	pres.withColor = false

	actual := present(t, pres)
	lines := strings.Split(strings.TrimSpace(actual), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, []string{"PACKAGE", "VERSION", "TYPE", "KIND", "ID", "SEVERITY", "ADVISORS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"jackson-databind", "2.9.8", "maven", "defect", "2798", "low", "github-defects"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"lodash", "4.17.20", "npm", "vulnerability", "CVE-2021-23337", "HIGH", "oss-index,", "osv"}, strings.Fields(lines[2]))
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "1 vulnerability and 1 defect across 3 packages", lines[4])
	assert.NotContains(t, actual, "rate limit reached")
}

func TestTablePresenter_ShowIssues(t *testing.T) {
	pres := NewPresenter(models.PresenterConfig{Run: internal.GenerateRun(t)}, true)

	actual := present(t, pres)

	assert.Contains(t, actual, "rate limit reached")
	assert.Contains(t, actual, "WARNING")
}

func TestTablePresenter_Colorized(t *testing.T) {
	pres := NewPresenter(models.PresenterConfig{Run: internal.GenerateRun(t)}, true)
	pres.withColor = true

	actual := present(t, pres)

	assert.Contains(t, actual, "CVE-2021-23337")
	assert.Contains(t, actual, "1 vulnerability and 1 defect across 3 packages")
}

func TestTablePresenter_NoFindings(t *testing.T) {
	r := internal.GenerateRun(t)
	pres := NewPresenter(models.PresenterConfig{Run: r, Filter: filter.Any{}}, false)

	actual := present(t, pres)

	assert.Equal(t, "No vulnerabilities or defects found\n\n0 vulnerabilities and 0 defects across 0 packages\n", actual)
}

func TestRows_Render_Deduplicates(t *testing.T) {
	r := row{Name: "a", Version: "1", Type: "npm", Kind: kindDefect, ID: "1", Severity: noSeverity}
	rs := rows{r, r}

	assert.Len(t, rs.Render(), 1)
}

func TestGetSeverityColor(t *testing.T) {
	assert.Equal(t, []int{1, 31}, []int(getSeverityColor("Critical")))
	assert.Equal(t, []int{0, 33}, []int(getSeverityColor("WARNING")))
	assert.Equal(t, []int{0, 0}, []int(getSeverityColor(noSeverity)))
}
