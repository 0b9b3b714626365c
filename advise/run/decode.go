package run

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/advise-tools/advise/internal/log"
)

const jsonMIMEType = "application/json"

// Decode reads a run in either its JSON or YAML encoding. The format is sniffed from the content.
func Decode(reader io.Reader) (Run, error) {
	by, err := io.ReadAll(reader)
	if err != nil {
		return Run{}, fmt.Errorf("unable to read run: %w", err)
	}
	if len(bytes.TrimSpace(by)) == 0 {
		return Run{}, fmt.Errorf("empty run document")
	}

	var r Run
	if isJSON(by) {
		log.Debugf("decoding advisor run as JSON (%d bytes)", len(by))
		err = json.Unmarshal(by, &r)
	} else {
		log.Debugf("decoding advisor run as YAML (%d bytes)", len(by))
		err = yaml.Unmarshal(by, &r)
	}
	if err != nil {
		return Run{}, fmt.Errorf("unable to decode run: %w", err)
	}

	return r, nil
}

func isJSON(by []byte) bool {
	for m := mimetype.Detect(by); m != nil; m = m.Parent() {
		if m.Is(jsonMIMEType) {
			return true
		}
	}
	return false
}

// ReadFile decodes the run stored at the given path of the filesystem.
func ReadFile(fs afero.Fs, path string) (Run, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Run{}, fmt.Errorf("unable to open run file=%q: %w", path, err)
	}
	defer log.CloseAndLogError(f, path)

	r, err := Decode(f)
	if err != nil {
		return Run{}, fmt.Errorf("run file=%q: %w", path, err)
	}
	return r, nil
}
