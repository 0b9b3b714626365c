package table

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/advise-tools/advise/advise/presenter/models"
)

const (
	kindVulnerability = "vulnerability"
	kindDefect        = "defect"
	noSeverity        = "-"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	config     models.PresenterConfig
	showIssues bool
	withColor  bool
}

// NewPresenter is a *Presenter constructor
func NewPresenter(pb models.PresenterConfig, showIssues bool) *Presenter {
	return &Presenter{
		config:     pb,
		showIssues: showIssues,
		withColor:  supportsColor(),
	}
}

// Present renders the findings of every package as a table
func (p *Presenter) Present(output io.Writer) error {
	doc := p.config.Document()
	rs := getRows(doc)

	if len(rs) == 0 {
		if _, err := io.WriteString(output, "No vulnerabilities or defects found\n"); err != nil {
			return err
		}
	} else {
		table := newTable(output, []string{"Package", "Version", "Type", "Kind", "ID", "Severity", "Advisors"})
		if p.withColor {
			for _, row := range rs.Render() {
				severityColor := getSeverityColor(row[5])
				table.Rich(row, []tablewriter.Colors{{}, {}, {}, {}, {}, severityColor, {}})
			}
		} else {
			table.AppendBulk(rs.Render())
		}
		table.Render()
	}

	if p.showIssues {
		if err := p.presentIssues(output, doc); err != nil {
			return err
		}
	}

	_, err := io.WriteString(output, p.footer(doc))
	return err
}

func (p *Presenter) presentIssues(output io.Writer, doc models.Document) error {
	var issueRows [][]string
	for _, pkg := range doc.Packages {
		for _, i := range pkg.Issues {
			issueRows = append(issueRows, []string{pkg.ID, i.Source, i.Severity.String(), i.Message})
		}
	}
	if len(issueRows) == 0 {
		return nil
	}

	if _, err := io.WriteString(output, "\n"); err != nil {
		return err
	}

	table := newTable(output, []string{"Package", "Source", "Severity", "Message"})
	if p.withColor {
		for _, row := range issueRows {
			table.Rich(row, []tablewriter.Colors{{}, {}, getSeverityColor(row[2]), {}})
		}
	} else {
		table.AppendBulk(issueRows)
	}
	table.Render()
	return nil
}

func (p *Presenter) footer(doc models.Document) string {
	summary := fmt.Sprintf("\n%s and %s across %s\n",
		english.Plural(doc.VulnerabilityCount(), "vulnerability", "vulnerabilities"),
		english.Plural(doc.DefectCount(), "defect", ""),
		english.Plural(len(doc.Packages), "package", ""),
	)
	if p.withColor {
		return color.Bold.Sprint(summary)
	}
	return summary
}

func newTable(output io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(output)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

func supportsColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func getRows(doc models.Document) rows {
	var rs rows
	for _, pkg := range doc.Packages {
		advisors := strings.Join(pkg.Advisors, ", ")

		for _, v := range pkg.Vulnerabilities {
			severity := noSeverity
			if ref, ok := v.HighestScore(); ok && ref.Severity != "" {
				severity = ref.Severity
			}
			rs = append(rs, row{
				Name:     pkg.Name,
				Version:  pkg.Version,
				Type:     pkg.Type,
				Kind:     kindVulnerability,
				ID:       v.ID,
				Severity: severity,
				Advisors: advisors,
			})
		}

		for _, d := range pkg.Defects {
			severity := d.Severity
			if severity == "" {
				severity = noSeverity
			}
			rs = append(rs, row{
				Name:     pkg.Name,
				Version:  pkg.Version,
				Type:     pkg.Type,
				Kind:     kindDefect,
				ID:       d.ID,
				Severity: severity,
				Advisors: advisors,
			})
		}
	}
	return rs
}

type rows []row

type row struct {
	Name     string
	Version  string
	Type     string
	Kind     string
	ID       string
	Severity string
	Advisors string
}

func (r row) Columns() []string {
	return []string{r.Name, r.Version, r.Type, r.Kind, r.ID, r.Severity, r.Advisors}
}

func (r row) String() string {
	return strings.Join(r.Columns(), "|")
}

func (rs rows) Render() [][]string {
	// defects from different advisors may share an ID and look identical once rendered
	seen := map[string]struct{}{}
	var deduped rows

	for _, v := range rs {
		key := v.String()
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		deduped = append(deduped, v)
	}

	out := make([][]string, len(deduped))
	for idx, r := range deduped {
		out[idx] = r.Columns()
	}
	return out
}

func getSeverityColor(severity string) tablewriter.Colors {
	severityFontType, severityColor := tablewriter.Normal, tablewriter.Normal

	switch strings.ToLower(severity) {
	case "critical":
		severityFontType = tablewriter.Bold
		severityColor = tablewriter.FgRedColor
	case "high", "error":
		severityColor = tablewriter.FgRedColor
	case "medium", "moderate", "warning":
		severityColor = tablewriter.FgYellowColor
	case "low", "hint":
		severityColor = tablewriter.FgGreenColor
	case "negligible":
		severityColor = tablewriter.FgBlueColor
	}

	return tablewriter.Colors{severityFontType, severityColor}
}
