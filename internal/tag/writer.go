package tag

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteReadings writes readings in the tag log format.
func WriteReadings(w io.Writer, readings []Reading) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(readingColumns); err != nil {
		return err
	}
	for _, r := range readings {
		if err := cw.Write([]string{ftoa(r.Time), r.ContactID, ftoa(r.Distance)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePositions writes positions in the position log format.
func WritePositions(w io.Writer, positions []Position) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(positionColumns); err != nil {
		return err
	}
	for _, p := range positions {
		if err := cw.Write([]string{ftoa(p.Time), p.TagID, ftoa(p.X), ftoa(p.Y)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes a session as TagA.csv, TagB.csv and the named position file
// inside dir, and records the paths in s.Files.
func Save(s *Session, dir, position string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	files := map[string]string{
		"A": filepath.Join(dir, FileName("A")),
		"B": filepath.Join(dir, FileName("B")),
	}
	if err := writeFile(files["A"], func(w io.Writer) error { return WriteReadings(w, s.A) }); err != nil {
		return err
	}
	if err := writeFile(files["B"], func(w io.Writer) error { return WriteReadings(w, s.B) }); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, position), func(w io.Writer) error { return WritePositions(w, s.Positions) }); err != nil {
		return err
	}
	s.Files = files
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
