package metrics

import (
	"bytes"
	"fmt"
	"os"

	"github.com/prometheus/common/expfmt"
)

// File permission constants.
const (
	textfilePermission = 0644
)

// WriteTextfile gathers the private registry and writes it in Prometheus
// text exposition format. The file is written to a temp path first and
// renamed so a textfile collector never reads a partial file.
func WriteTextfile(path string) error {
	mfs, err := customRegistry.Gather()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatherFailed, err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("%w: %v", ErrGatherFailed, err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), textfilePermission); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
