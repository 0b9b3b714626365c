package advise

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/advise-tools/advise/advise/logger"
	"github.com/advise-tools/advise/advise/run"
	"github.com/advise-tools/advise/internal/log"
)

// LoadRun reads a stored advisor run (JSON or YAML) from the given file.
func LoadRun(fs afero.Fs, path string) (run.Run, error) {
	r, err := run.ReadFile(fs, path)
	if err != nil {
		return run.Run{}, err
	}
	log.Nested("file", path).Debugf("loaded advisor run: %s", r)
	return r, nil
}

// ReadRun reads a stored advisor run (JSON or YAML) from the given reader.
func ReadRun(reader io.Reader) (run.Run, error) {
	r, err := run.Decode(reader)
	if err != nil {
		return run.Run{}, fmt.Errorf("unable to read advisor run: %w", err)
	}
	log.Debugf("loaded advisor run: %s", r)
	return r, nil
}

func SetLogger(logger logger.Logger) {
	log.Set(logger)
}
