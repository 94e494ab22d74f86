package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans a write out to every writer. Failing writers
// do not stop the others; their errors are combined.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: writers}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		total int
		errs  error
	)
	for _, w := range cw.Writers {
		n, err := w.Write(p)
		errs = multierr.Append(errs, err)
		if err == nil {
			total += n
		}
	}
	return total, errs
}
