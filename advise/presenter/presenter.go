package presenter

import (
	"io"

	"github.com/advise-tools/advise/advise/presenter/json"
	"github.com/advise-tools/advise/advise/presenter/models"
	"github.com/advise-tools/advise/advise/presenter/table"
	"github.com/advise-tools/advise/advise/presenter/template"
	"github.com/advise-tools/advise/advise/presenter/yaml"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// Config selects and configures a presenter.
type Config struct {
	Option       Option
	TemplateFile string
	ShowIssues   bool
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(c Config, pb models.PresenterConfig) Presenter {
	switch c.Option {
	case JSONPresenter:
		return json.NewPresenter(pb)
	case YAMLPresenter:
		return yaml.NewPresenter(pb)
	case TablePresenter:
		return table.NewPresenter(pb, c.ShowIssues)
	case TemplatePresenter:
		return template.NewPresenter(pb, c.TemplateFile)
	default:
		return nil
	}
}
