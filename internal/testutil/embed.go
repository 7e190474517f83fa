// Package testutil gives tests access to shared FDS fixtures.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, "testdata/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Fixtures returns every embedded .fds document keyed by file name.
func Fixtures() (map[string][]byte, error) {
	names, err := fs.Glob(TestdataFS, "testdata/*.fds")
	if err != nil {
		return nil, err
	}
	docs := make(map[string][]byte, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(TestdataFS, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
		}
		docs[name[len("testdata/"):]] = data
	}
	return docs, nil
}
