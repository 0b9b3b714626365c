package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/advise-tools/advise/advise/presenter/json"
	"github.com/advise-tools/advise/advise/presenter/models"
	"github.com/advise-tools/advise/advise/presenter/table"
	"github.com/advise-tools/advise/advise/presenter/template"
	"github.com/advise-tools/advise/advise/presenter/yaml"
)

func TestParseOption(t *testing.T) {
	tests := []struct {
		input    string
		expected Option
	}{
		{"json", JSONPresenter},
		{"JSON", JSONPresenter},
		{"yaml", YAMLPresenter},
		{"yml", YAMLPresenter},
		{"table", TablePresenter},
		{"template", TemplatePresenter},
		{"cyclonedx", UnknownPresenter},
		{"", UnknownPresenter},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseOption(test.input))
		})
	}
}

func TestOption_String(t *testing.T) {
	assert.Equal(t, "table", TablePresenter.String())
	assert.Equal(t, "UnknownPresenter", Option(42).String())
	assert.Equal(t, []string{"json", "yaml", "table", "template"}, OptionNames())
}

func TestGetPresenter(t *testing.T) {
	pb := models.PresenterConfig{}

	assert.IsType(t, &json.Presenter{}, GetPresenter(Config{Option: JSONPresenter}, pb))
	assert.IsType(t, &yaml.Presenter{}, GetPresenter(Config{Option: YAMLPresenter}, pb))
	assert.IsType(t, &table.Presenter{}, GetPresenter(Config{Option: TablePresenter}, pb))
	assert.IsType(t, &template.Presenter{}, GetPresenter(Config{Option: TemplatePresenter, TemplateFile: "x"}, pb))
	assert.Nil(t, GetPresenter(Config{}, pb))
}
