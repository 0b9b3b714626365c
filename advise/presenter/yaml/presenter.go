package yaml

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/advise-tools/advise/advise/presenter/models"
)

type Presenter struct {
	config models.PresenterConfig
}

func NewPresenter(pb models.PresenterConfig) *Presenter {
	return &Presenter{
		config: pb,
	}
}

// Present writes the document as YAML.
func (pres *Presenter) Present(output io.Writer) error {
	doc := pres.config.Document()

	enc := yaml.NewEncoder(output)
	defer enc.Close()
	return enc.Encode(&doc)
}
