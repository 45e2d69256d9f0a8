// Package text writes frequent Itemsets as lines of text, one Itemset per line
package text

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/sink"
)

// Options configures a text Sink
type Options struct {
	WithSupport bool           // iff true, each line ends with " #SUP: n"
	Format      sink.Formatter // defaults to sink.DefaultFormatter
}

// Sink writes Itemsets through a buffered writer
type Sink struct {
	w      *bufio.Writer
	closer io.Closer
	opts   Options
}

// New returns a Sink writing to w. Closing the Sink flushes, but does not close, w.
func New(w io.Writer, opts Options) *Sink {
	if opts.Format == nil {
		opts.Format = sink.DefaultFormatter
	}
	return &Sink{w: bufio.NewWriter(w), opts: opts}
}

// Create returns a Sink writing to a new file at path, which it closes on Close
func Create(path string, opts Options) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s := New(f, opts)
	s.closer = f
	return s, nil
}

// Write writes one line
func (s *Sink) Write(set itemsets.Itemset, support uint64) error {
	s.w.WriteString(s.opts.Format(set))
	if s.opts.WithSupport {
		s.w.WriteString(" #SUP: ")
		s.w.WriteString(strconv.FormatUint(support, 10))
	}
	return s.w.WriteByte('\n')
}

// Close flushes buffered lines
func (s *Sink) Close() error {
	err := s.w.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
