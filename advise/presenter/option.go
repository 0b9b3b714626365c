package presenter

import "strings"

const (
	UnknownPresenter Option = iota
	JSONPresenter
	YAMLPresenter
	TablePresenter
	TemplatePresenter
)

var optionStr = []string{
	"UnknownPresenter",
	"json",
	"yaml",
	"table",
	"template",
}

var Options = []Option{
	JSONPresenter,
	YAMLPresenter,
	TablePresenter,
	TemplatePresenter,
}

type Option int

func ParseOption(userStr string) Option {
	switch strings.ToLower(userStr) {
	case strings.ToLower(JSONPresenter.String()):
		return JSONPresenter
	case strings.ToLower(YAMLPresenter.String()), "yml":
		return YAMLPresenter
	case strings.ToLower(TablePresenter.String()):
		return TablePresenter
	case strings.ToLower(TemplatePresenter.String()):
		return TemplatePresenter
	default:
		return UnknownPresenter
	}
}

func (o Option) String() string {
	if int(o) >= len(optionStr) || o < 0 {
		return optionStr[0]
	}

	return optionStr[o]
}

// OptionNames returns the user-facing names of every supported presenter.
func OptionNames() []string {
	names := make([]string, 0, len(Options))
	for _, o := range Options {
		names = append(names, o.String())
	}
	return names
}
