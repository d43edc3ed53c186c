package tag

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Column headers of the tag and position logs.
const (
	ColTime      = "Time [s]"
	ColContactID = "ContactID"
	ColDistance  = "Distance [m]"
	ColTagID     = "TagID"
	ColX         = "x [m]"
	ColY         = "y[m]"
)

var (
	readingColumns  = []string{ColTime, ColContactID, ColDistance}
	positionColumns = []string{ColTime, ColTagID, ColX, ColY}
)

// table is a parsed CSV file with its columns located by header name.
type table struct {
	path string
	cols map[string]int
	rows [][]string
}

func (t *table) field(row []string, col string) string {
	return strings.TrimSpace(row[t.cols[col]])
}

func (t *table) float(row []string, line int, col string) (float64, error) {
	raw := t.field(row, col)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Errorf("%s:%d: column %q: invalid number %q", t.path, line, col, raw)
	}
	return v, nil
}

func readTable(path string, required []string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return parseTable(f, path, required)
}

func parseTable(r io.Reader, path string, required []string) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Errorf("%s: missing header row", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read header", path)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		cols[h] = i
	}
	for _, want := range required {
		if _, ok := cols[want]; !ok {
			return nil, errors.Errorf("%s: missing column %q", path, want)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "%s: parse", path)
	}
	return &table{path: path, cols: cols, rows: rows}, nil
}

// ReadReadings parses a tag log with Time, ContactID and Distance columns.
func ReadReadings(path string) ([]Reading, error) {
	t, err := readTable(path, readingColumns)
	if err != nil {
		return nil, err
	}
	return t.readings()
}

func (t *table) readings() ([]Reading, error) {
	out := make([]Reading, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		ts, err := t.float(row, line, ColTime)
		if err != nil {
			return nil, err
		}
		dist, err := t.float(row, line, ColDistance)
		if err != nil {
			return nil, err
		}
		out = append(out, Reading{
			Time:      ts,
			ContactID: t.field(row, ColContactID),
			Distance:  dist,
		})
	}
	return out, nil
}

// ReadPositions parses a position log with Time, TagID, x and y columns.
func ReadPositions(path string) ([]Position, error) {
	t, err := readTable(path, positionColumns)
	if err != nil {
		return nil, err
	}
	return t.positions()
}

func (t *table) positions() ([]Position, error) {
	out := make([]Position, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2
		ts, err := t.float(row, line, ColTime)
		if err != nil {
			return nil, err
		}
		x, err := t.float(row, line, ColX)
		if err != nil {
			return nil, err
		}
		y, err := t.float(row, line, ColY)
		if err != nil {
			return nil, err
		}
		out = append(out, Position{
			Time:  ts,
			TagID: t.field(row, ColTagID),
			X:     x,
			Y:     y,
		})
	}
	return out, nil
}

// LoadOptions locates the files of a session.
type LoadOptions struct {
	Dir      string
	Count    int
	Position string
	// Override returns an explicit path for a tag, or "" to use the
	// generated file name.
	Override func(name string) string
}

// Load reads tag A, tag B and the position log.
func Load(opts LoadOptions) (*Session, error) {
	files, err := FileNames(opts.Dir, opts.Count)
	if err != nil {
		return nil, err
	}
	if opts.Override != nil {
		for name := range files {
			if p := opts.Override(name); p != "" {
				files[name] = p
			}
		}
	}

	s := &Session{Files: files}
	if s.A, err = ReadReadings(files["A"]); err != nil {
		return nil, errors.Wrap(err, "load tag A")
	}
	if s.B, err = ReadReadings(files["B"]); err != nil {
		return nil, errors.Wrap(err, "load tag B")
	}
	if s.Positions, err = ReadPositions(opts.Position); err != nil {
		return nil, errors.Wrap(err, "load positions")
	}

	log.WithFields(log.Fields{
		"tag_a":     len(s.A),
		"tag_b":     len(s.B),
		"positions": len(s.Positions),
	}).Debug("session loaded")
	return s, nil
}
