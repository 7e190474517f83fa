package fds_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-fds"
	"github.com/KimNorgaard/go-fds/internal/testutil"
)

// hasEmptySection reports whether s holds a section with no entries. Such a
// section is written as a bare header, which reads back as nothing.
func hasEmptySection(s *fds.Section) bool {
	for _, v := range s.All() {
		sub, ok := v.Section()
		if !ok {
			continue
		}
		if sub.Len() == 0 || hasEmptySection(sub) {
			return true
		}
	}
	return false
}

func TestRoundTripFixtures(t *testing.T) {
	docs, err := testutil.Fixtures()
	require.NoError(t, err)
	require.Contains(t, docs, "large.fds")

	for name, data := range docs {
		t.Run(name, func(t *testing.T) {
			first, err := fds.Parse(data)
			require.NoError(t, err)

			out, err := fds.Format(first)
			require.NoError(t, err)
			second, err := fds.Parse(out)
			require.NoError(t, err)
			require.True(t, first.Equal(second))
		})
	}
}

func FuzzRoundTrip(f *testing.F) {
	// Seed the corpus with the golden inputs.
	seedFiles, err := filepath.Glob("testdata/*.fds")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte("a:\n    b: 1\n"))
	f.Add([]byte("a:\nb: 2\n"))
	f.Add([]byte("x= SGVsbG8=\n"))
	f.Add([]byte("x=\n"))
	f.Add([]byte("#note\nkey: 1\n"))
	f.Add([]byte("a: 1\n    b: 2\n"))
	f.Add([]byte("\\-: \\-\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		first, err := fds.Parse(data)
		if err != nil {
			return
		}
		if hasEmptySection(first) {
			t.Skip("empty sections do not survive formatting")
		}

		out, err := fds.Format(first)
		require.NoError(t, err, "Format failed for a parsed tree")

		second, err := fds.Parse(out)
		require.NoError(t, err, "Parse failed on formatted output:\n%s", out)
		require.True(t, first.Equal(second), "tree changed in a round trip:\n%s", out)
	})
}
