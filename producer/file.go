package producer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/jsx7ba/pull"
)

// File produces the lines read from a file.
type File struct {
	rd       io.ReadSeeker
	seekable bool
	runs     int
}

// statically ensure that *File implements Source
var _ pull.Source[string] = &File{}

// NewFile creates a new producer for the lines of a reader. If seekable is
// set to false (e.g. for stdin), only the first production succeeds;
// subsequent ones fault instead of silently producing nothing.
func NewFile(rd io.ReadSeeker, seekable bool) *File {
	return &File{rd: rd, seekable: seekable}
}

func (f *File) Produce(yield func(string) bool) error {
	if f.runs > 0 {
		// reset the pointer to the start if possible
		if !f.seekable {
			return errors.New("file source is not seekable, can only be produced once")
		}

		if _, err := f.rd.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("seek: %w", err)
		}
	}

	f.runs++

	sc := bufio.NewScanner(f.rd)
	for sc.Scan() {
		if !yield(sc.Text()) {
			return nil
		}
	}

	return sc.Err()
}
