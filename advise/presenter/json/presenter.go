package json

import (
	"encoding/json"
	"io"

	"github.com/advise-tools/advise/advise/presenter/models"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	config models.PresenterConfig
}

// NewPresenter creates a new JSON presenter
func NewPresenter(pb models.PresenterConfig) *Presenter {
	return &Presenter{
		config: pb,
	}
}

// Present creates a JSON-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	doc := pres.config.Document()

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}
