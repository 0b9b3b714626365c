package defect

import (
	"fmt"
	"time"
)

// Defect is a bug or issue ticket an advisor found for a package (e.g. in the project's issue tracker). Defects
// reported by different advisors are not considered comparable and are never merged.
type Defect struct {
	ID                string            `json:"id" yaml:"id"`
	URL               string            `json:"url" yaml:"url"`
	Title             string            `json:"title,omitempty" yaml:"title,omitempty"`
	State             string            `json:"state,omitempty" yaml:"state,omitempty"`
	Severity          string            `json:"severity,omitempty" yaml:"severity,omitempty"`
	Description       string            `json:"description,omitempty" yaml:"description,omitempty"`
	CreationTime      *time.Time        `json:"creation_time,omitempty" yaml:"creation_time,omitempty"`
	ModificationTime  *time.Time        `json:"modification_time,omitempty" yaml:"modification_time,omitempty"`
	ClosingTime       *time.Time        `json:"closing_time,omitempty" yaml:"closing_time,omitempty"`
	FixReleaseVersion string            `json:"fix_release_version,omitempty" yaml:"fix_release_version,omitempty"`
	FixReleaseURL     string            `json:"fix_release_url,omitempty" yaml:"fix_release_url,omitempty"`
	Labels            map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

func (d Defect) String() string {
	return fmt.Sprintf("Defect(id=%s state=%q url=%s)", d.ID, d.State, d.URL)
}

// IsOpen reports whether the defect has not been closed yet.
func (d Defect) IsOpen() bool {
	return d.ClosingTime == nil
}

// Clone returns a copy of the defect that shares no mutable state with the receiver.
func (d Defect) Clone() Defect {
	c := d
	c.CreationTime = cloneTime(d.CreationTime)
	c.ModificationTime = cloneTime(d.ModificationTime)
	c.ClosingTime = cloneTime(d.ClosingTime)
	if d.Labels != nil {
		c.Labels = make(map[string]string, len(d.Labels))
		for k, v := range d.Labels {
			c.Labels[k] = v
		}
	}
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
