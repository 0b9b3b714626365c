package models

import (
	"github.com/advise-tools/advise/advise/filter"
	"github.com/advise-tools/advise/advise/run"
)

// PresenterConfig holds everything a presenter needs to build its output.
type PresenterConfig struct {
	Run       run.Run
	Filter    filter.Filter
	AppConfig interface{}
}

// Document builds the document described by the configuration.
func (c PresenterConfig) Document() Document {
	return NewDocument(c.Run, c.Filter, c.AppConfig)
}
