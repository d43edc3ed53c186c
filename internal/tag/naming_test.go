package tag

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	cases := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for i, want := range cases {
		assert.Equal(t, want, Name(i), "Name(%d)", i)
	}
	assert.Equal(t, "", Name(-1))
}

func TestIndexInvertsName(t *testing.T) {
	for i := 0; i < 1000; i++ {
		got, ok := Index(Name(i))
		require.True(t, ok)
		assert.Equal(t, i, got)
	}

	for _, bad := range []string{"", "a", "A1", "Ä"} {
		_, ok := Index(bad)
		assert.False(t, ok, bad)
	}
}

func TestFileNames(t *testing.T) {
	files, err := FileNames("data", 3)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"A": filepath.Join("data", "TagA.csv"),
		"B": filepath.Join("data", "TagB.csv"),
		"C": filepath.Join("data", "TagC.csv"),
	}, files)
	assert.Equal(t, "tag_aa", VarName(Name(26)))

	_, err = FileNames("data", 1)
	assert.Error(t, err)
}
