package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advise-tools/advise/advise/filter"
	"github.com/advise-tools/advise/advise/presenter/internal"
)

func TestNewDocument(t *testing.T) {
	r := internal.GenerateRun(t)

	doc := NewDocument(r, nil, nil)

	require.Len(t, doc.Packages, 3)
	var ids []string
	for _, p := range doc.Packages {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{
		internal.Jackson.String(),
		internal.Clean.String(),
		internal.Lodash.String(),
	}, ids)

	lodash := doc.Packages[2]
	assert.Equal(t, "pkg:npm/lodash@4.17.20", lodash.PURL)
	assert.Equal(t, []string{"oss-index", "osv"}, lodash.Advisors)
	require.Len(t, lodash.Vulnerabilities, 1)
	assert.Len(t, lodash.Vulnerabilities[0].References, 2)
	assert.Empty(t, lodash.Defects)
	assert.NotNil(t, lodash.Defects)

	jackson := doc.Packages[0]
	require.Len(t, jackson.Issues, 1)
	assert.NotEmpty(t, jackson.Issues[0].ID)
	assert.Equal(t, jackson.Issues[0].Fingerprint().ID(), jackson.Issues[0].ID)

	assert.Equal(t, 1, doc.VulnerabilityCount())
	assert.Equal(t, 1, doc.DefectCount())
	assert.Equal(t, internal.StartTime, doc.Run.StartTime)
	assert.Empty(t, doc.Run.Filter)
	assert.Equal(t, "advise", doc.Descriptor.Name)
}

func TestNewDocument_Filtered(t *testing.T) {
	r := internal.GenerateRun(t)

	doc := NewDocument(r, filter.Vulnerabilities{}, nil)

	require.Len(t, doc.Packages, 1)
	assert.Equal(t, internal.Lodash.String(), doc.Packages[0].ID)
	assert.Equal(t, filter.Vulnerabilities{}.String(), doc.Run.Filter)
}

func TestNewDocument_EmptyRunHasNoNullPackages(t *testing.T) {
	doc := PresenterConfig{Filter: filter.Defects{}}.Document()

	assert.NotNil(t, doc.Packages)
	assert.Empty(t, doc.Packages)
}
