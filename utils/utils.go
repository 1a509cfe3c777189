package utils

import (
	"io/fs"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// TestData is one case of testdata/testcase.yaml. Expected maps a stage
// name ("infix", "rpn", "lispy", "eval", "error") to its output.
type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}

// FindSourceFiles returns the .lox files under dir in lexical order.
func FindSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".lox" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	return files, nil
}
