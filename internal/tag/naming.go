package tag

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Name returns the identifier of the i-th tag, counted from zero, using
// spreadsheet column letters: A..Z, AA..AZ, BA.. and so on.
func Name(i int) string {
	if i < 0 {
		return ""
	}
	var b []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

// Index is the inverse of Name. It reports false for anything that is not
// an upper-case letter sequence.
func Index(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 'A' || c > 'Z' {
			return 0, false
		}
		n = n*26 + int(c-'A'+1)
	}
	return n - 1, true
}

// FileName returns the CSV file name used for a tag's readings.
func FileName(name string) string {
	return "Tag" + name + ".csv"
}

// VarName returns the lower-case key used for a tag in reports.
func VarName(name string) string {
	return "tag_" + strings.ToLower(name)
}

// Names returns the identifiers of the first count tags.
func Names(count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = Name(i)
	}
	return names
}

// FileNames maps each of the first count tag identifiers to its file in dir.
func FileNames(dir string, count int) (map[string]string, error) {
	if count < 2 {
		return nil, errors.Errorf("need at least 2 tags, got %d", count)
	}
	files := make(map[string]string, count)
	for _, name := range Names(count) {
		files[name] = filepath.Join(dir, FileName(name))
	}
	return files, nil
}
