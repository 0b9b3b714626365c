package defect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefect_Clone(t *testing.T) {
	closed := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	d := Defect{
		ID:          "GH-12",
		URL:         "https://github.com/org/repo/issues/12",
		ClosingTime: &closed,
		Labels:      map[string]string{"bug": "true"},
	}

	c := d.Clone()
	c.Labels["bug"] = "false"
	*c.ClosingTime = closed.Add(time.Hour)

	assert.Equal(t, "true", d.Labels["bug"])
	assert.Equal(t, closed, *d.ClosingTime)
}

func TestDefect_IsOpen(t *testing.T) {
	now := time.Now()
	assert.True(t, Defect{ID: "1"}.IsOpen())
	assert.False(t, Defect{ID: "2", ClosingTime: &now}.IsOpen())
}
