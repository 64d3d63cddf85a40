package conformance

import (
	"basic/eval"
	"basic/types"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestConformance(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("Failed to load tests: %v", err)
	}

	if len(tests) == 0 {
		t.Fatal("No tests loaded")
	}

	runner := NewRunner()
	results := runner.RunAll(tests)
	stats := ComputeStats(results)

	// Group results by file for organized output
	fileGroups := make(map[string][]TestResult)
	for _, result := range results {
		fileGroups[result.Test.File] = append(fileGroups[result.Test.File], result)
	}

	for file, fileResults := range fileGroups {
		t.Run(file, func(t *testing.T) {
			for _, result := range fileResults {
				t.Run(result.Test.Test.Name, func(t *testing.T) {
					if result.Skipped {
						t.Skipf("Skipped: %s", result.SkipReason)
					} else if !result.Passed {
						if result.Error != nil {
							t.Errorf("Test failed: %v\noutput:\n%s", result.Error, result.Output)
						} else {
							t.Error("Test failed")
						}
					}
				})
			}
		})
	}

	t.Logf("\n=== Summary ===\n%s", FormatStats(stats))
}

func TestLoadAllTests(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("Failed to load tests: %v", err)
	}

	t.Logf("Loaded %d test cases from conformance suite", len(tests))
	if len(tests) < 40 {
		t.Errorf("Expected at least 40 tests, got %d", len(tests))
	}

	files := make(map[string]bool)
	for _, test := range tests {
		files[test.File] = true
	}
	if len(files) != 7 {
		t.Errorf("Expected 7 test files, got %d", len(files))
	}
	if !files["programs.yaml"] {
		t.Errorf("programs.yaml not loaded; files: %v", files)
	}
}

func TestYAMLParsing(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("YAML parsing failed: %v", err)
	}

	for i, test := range tests {
		if test.Test.Name == "" {
			t.Errorf("Test %d in %s has no name", i, test.File)
		}
		if test.Test.Expect.IsEmpty() {
			t.Errorf("Test %s in %s has no expectation", test.Test.Name, test.File)
		}
		if test.Test.Source == "" {
			t.Errorf("Test %s in %s has no source", test.Test.Name, test.File)
		}
		if e := test.Test.Expect.Error; e != "" && e != "LEX" && e != "PARSE" {
			if _, ok := types.ErrorFromString(e); !ok {
				t.Errorf("Test %s in %s expects unknown error %q", test.Test.Name, test.File, e)
			}
		}
		if test.Suite.Name == "" {
			t.Errorf("Suite in %s has no name", test.File)
		}
	}
}

func TestLoadDirRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("tests: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); err == nil {
		t.Error("LoadDir() error = nil, want YAML error")
	}
}

func TestIsSkipped(t *testing.T) {
	tests := []struct {
		skip   interface{}
		want   bool
		reason string
	}{
		{nil, false, ""},
		{false, false, ""},
		{true, true, "skipped"},
		{"not ready", true, "not ready"},
		{42, false, ""},
	}

	for _, tt := range tests {
		tc := TestCase{Skip: tt.skip}
		got, reason := tc.IsSkipped()
		if got != tt.want || reason != tt.reason {
			t.Errorf("IsSkipped(%v) = %v, %q, want %v, %q", tt.skip, got, reason, tt.want, tt.reason)
		}
	}
}

func TestCheckExpectation(t *testing.T) {
	out := func(s string) *string { return &s }
	divErr := &eval.RuntimeError{Code: types.E_DIV, Msg: "division by zero"}

	tests := []struct {
		name   string
		expect Expectation
		output string
		err    error
		pass   bool
	}{
		{"exact output", Expectation{Output: out("1\n")}, "1\n", nil, true},
		{"wrong output", Expectation{Output: out("1\n")}, "2\n", nil, false},
		{"empty output expected", Expectation{Output: out("")}, "", nil, true},
		{"error code", Expectation{Error: "E_DIV"}, "", divErr, true},
		{"error code case-insensitive", Expectation{Error: "e_div"}, "", divErr, true},
		{"wrong error code", Expectation{Error: "E_TYPE"}, "", divErr, false},
		{"missing error", Expectation{Error: "E_DIV"}, "1\n", nil, false},
		{"unexpected error", Expectation{Output: out("")}, "", divErr, false},
		{"other error", Expectation{Error: "E_DIV"}, "", errors.New("boom"), false},
		{"contains", Expectation{Contains: "lo w"}, "hello world\n", nil, true},
		{"match", Expectation{Match: `^\d+\n$`}, "42\n", nil, true},
		{"no match", Expectation{Match: `^\d+\n$`}, "x\n", nil, false},
		{"bad pattern", Expectation{Match: `(`}, "x\n", nil, false},
		{"nothing expected", Expectation{}, "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pass, err := checkExpectation(tt.expect, tt.output, tt.err)
			if pass != tt.pass {
				t.Errorf("checkExpectation() = %v (%v), want %v", pass, err, tt.pass)
			}
			if !pass && err == nil {
				t.Error("failed check returned no reason")
			}
		})
	}
}

func TestRunnerUsesTestStepLimit(t *testing.T) {
	test := LoadedTest{Test: TestCase{
		Name:     "spin",
		Source:   "top: IF 1 = 1 THEN top\n",
		MaxSteps: 10,
		Expect:   Expectation{Error: "E_MAXSTEPS"},
	}}
	result := NewRunner().Run(test)
	if !result.Passed {
		t.Errorf("Run() failed: %v", result.Error)
	}
}

func TestComputeStats(t *testing.T) {
	results := []TestResult{{Passed: true}, {Passed: true}, {Skipped: true}, {}}
	stats := ComputeStats(results)
	want := SummaryStats{Total: 4, Passed: 2, Failed: 1, Skipped: 1}
	if stats != want {
		t.Errorf("ComputeStats() = %+v, want %+v", stats, want)
	}
	if got := FormatStats(stats); got != "2 passed, 1 failed, 1 skipped (4 total)" {
		t.Errorf("FormatStats() = %q", got)
	}
}

// BenchmarkLoadAllTests measures test loading performance
func BenchmarkLoadAllTests(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := LoadAllTests(); err != nil {
			b.Fatal(err)
		}
	}
}

func ExampleFormatStats() {
	fmt.Println(FormatStats(SummaryStats{Total: 3, Passed: 2, Skipped: 1}))
	// Output: 2 passed, 0 failed, 1 skipped (3 total)
}
