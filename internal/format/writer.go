package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/go-homedir"

	"github.com/advise-tools/advise/advise/presenter"
	"github.com/advise-tools/advise/advise/presenter/models"
	"github.com/advise-tools/advise/internal/log"
)

// stdout is where outputs without a file are written to
var stdout io.Writer = os.Stdout

// ReportWriter writes an advisor report to every configured destination.
type ReportWriter interface {
	Write(result models.PresenterConfig) error
	io.Closer
}

var _ ReportWriter = (*reportMultiWriter)(nil)

// PresentationConfig holds the presenter options shared by all outputs.
type PresentationConfig struct {
	TemplateFilePath string
	ShowIssues       bool
}

// MakeReportWriter creates a ReportWriter for output or returns an error. this will either return a valid writer
// or an error but neither both and if there is no error, ReportWriter.Close() should be called
func MakeReportWriter(outputs []string, defaultFile string, cfg PresentationConfig) (ReportWriter, error) {
	outputOptions, err := ParseOutputs(outputs, defaultFile, cfg)
	if err != nil {
		return nil, err
	}

	writer, err := newMultiWriter(outputOptions...)
	if err != nil {
		return nil, err
	}

	return writer, nil
}

// ParseOutputs validates the user's output selections. Each output is either FORMAT or FORMAT=FILE; outputs without
// a file go to the default file (or STDOUT when there is none).
func ParseOutputs(outputs []string, defaultFile string, cfg PresentationConfig) (out []WriterDescription, errs error) {
	// always should have one option -- we generally get the default of "table", but just make sure
	if len(outputs) == 0 {
		outputs = append(outputs, presenter.TablePresenter.String())
	}

	usesTemplate := false
	for _, name := range outputs {
		name = strings.TrimSpace(name)

		// split to at most two parts for <format>=<file>
		parts := strings.SplitN(name, "=", 2)

		// the format name is the first part
		name = parts[0]

		// default to the --file or empty string if not specified
		file := defaultFile

		// If a file is specified as part of the output formatName, use that
		if len(parts) > 1 {
			file = parts[1]
		}

		option := presenter.ParseOption(name)
		switch option {
		case presenter.UnknownPresenter:
			errs = multierror.Append(errs, fmt.Errorf(`unsupported output format "%s", supported formats are: %+v`, name, presenter.OptionNames()))
			continue
		case presenter.TemplatePresenter:
			usesTemplate = true
			if cfg.TemplateFilePath == "" {
				errs = multierror.Append(errs, fmt.Errorf("must specify path to template file when using %q output format", presenter.TemplatePresenter))
				continue
			}
		}

		out = append(out, newWriterDescription(option, file, cfg))
	}

	if cfg.TemplateFilePath != "" && !usesTemplate {
		errs = multierror.Append(errs, fmt.Errorf("specified template file %q, but %q output format must be selected in order to use a template file",
			cfg.TemplateFilePath, presenter.TemplatePresenter))
	}

	return out, errs
}

// WriterDescription is the format and path used to create a single report destination
type WriterDescription struct {
	Option presenter.Option
	Path   string
	Cfg    PresentationConfig
}

func newWriterDescription(o presenter.Option, p string, cfg PresentationConfig) WriterDescription {
	expandedPath, err := homedir.Expand(p)
	if err != nil {
		log.Warnf("could not expand given writer output path=%q: %+v", p, err)
		// ignore errors
		expandedPath = p
	}
	return WriterDescription{
		Option: o,
		Path:   expandedPath,
		Cfg:    cfg,
	}
}

func (d WriterDescription) presenterConfig() presenter.Config {
	return presenter.Config{
		Option:       d.Option,
		TemplateFile: d.Cfg.TemplateFilePath,
		ShowIssues:   d.Cfg.ShowIssues,
	}
}

// reportMultiWriter holds a list of child ReportWriters to apply all Write and Close operations to
type reportMultiWriter struct {
	writers []ReportWriter
}

// newMultiWriter create all report writers from input options; if a file is not specified STDOUT is used
func newMultiWriter(options ...WriterDescription) (_ *reportMultiWriter, err error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("no output options provided")
	}

	out := &reportMultiWriter{}

	for _, option := range options {
		switch len(option.Path) {
		case 0:
			out.writers = append(out.writers, &reportStreamWriter{
				cfg: option.presenterConfig(),
				out: stdout,
			})
		default:
			// create any missing subdirectories
			dir := filepath.Dir(option.Path)
			if dir != "" {
				s, err := os.Stat(dir)
				if err != nil {
					err = os.MkdirAll(dir, 0755)
					if err != nil {
						return nil, err
					}
				} else if !s.IsDir() {
					return nil, fmt.Errorf("output path does not contain a valid directory: %s", option.Path)
				}
			}
			fileOut, err := os.OpenFile(option.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
			if err != nil {
				return nil, fmt.Errorf("unable to create report file: %w", err)
			}
			out.writers = append(out.writers, &reportStreamWriter{
				cfg:  option.presenterConfig(),
				out:  fileOut,
				path: option.Path,
			})
		}
	}

	return out, nil
}

// Write writes the result to all writers
func (m *reportMultiWriter) Write(s models.PresenterConfig) (errs error) {
	for _, w := range m.writers {
		err := w.Write(s)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("unable to write result: %w", err))
		}
	}
	return errs
}

// Close closes all writers
func (m *reportMultiWriter) Close() (errs error) {
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("unable to close writer: %w", err))
		}
	}
	return errs
}

// reportStreamWriter implements ReportWriter for a given presenter and io.Writer, also providing a close function for cleanup
type reportStreamWriter struct {
	cfg  presenter.Config
	out  io.Writer
	path string
}

// Write the provided result to the data stream
func (w *reportStreamWriter) Write(s models.PresenterConfig) error {
	pres := presenter.GetPresenter(w.cfg, s)
	if pres == nil {
		return fmt.Errorf("no presenter for output format %q", w.cfg.Option)
	}
	if err := pres.Present(w.out); err != nil {
		return fmt.Errorf("unable to encode result: %w", err)
	}
	return nil
}

// Close any resources, such as open files
func (w *reportStreamWriter) Close() error {
	if w.path == "" {
		return nil
	}
	if closer, ok := w.out.(io.Closer); ok {
		log.Debugf("report written to %q", w.path)
		return closer.Close()
	}
	return nil
}
