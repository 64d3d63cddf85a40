package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// TestPath is the directory holding the YAML suites, relative to this package
const TestPath = "testdata"

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests finds the suite directory and loads every test case in it
func LoadAllTests() ([]LoadedTest, error) {
	// Tests run from the package directory; the CLI may run from the module root
	candidates := []string{
		TestPath,
		filepath.Join("conformance", TestPath),
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return LoadDir(candidate)
		}
	}
	return nil, fmt.Errorf("could not find conformance test directory (tried %v)", candidates)
}

// LoadDir loads every .yaml file under dir, in path order
func LoadDir(dir string) ([]LoadedTest, error) {
	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".yaml" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var loaded []LoadedTest
	for _, path := range paths {
		tests, err := loadTestFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}

		relPath, _ := filepath.Rel(dir, path)
		for _, test := range tests {
			test.File = relPath
			loaded = append(loaded, test)
		}
	}
	return loaded, nil
}

// loadTestFile parses a single YAML file and returns all test cases
func loadTestFile(path string) ([]LoadedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	var tests []LoadedTest
	for _, test := range suite.Tests {
		tests = append(tests, LoadedTest{
			Suite: suite,
			Test:  test,
		})
	}

	return tests, nil
}
