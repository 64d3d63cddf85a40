package conformance

import (
	"basic/eval"
	"basic/parser"
	"basic/types"
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultMaxSteps bounds every run so a broken loop fails instead of hanging
const DefaultMaxSteps = 1_000_000

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Output     string
	Error      error
}

// Runner executes conformance tests
type Runner struct {
	MaxSteps int
}

// NewRunner creates a new test runner with the default step limit
func NewRunner() *Runner {
	return &Runner{MaxSteps: DefaultMaxSteps}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	maxSteps := r.MaxSteps
	if test.Test.MaxSteps > 0 {
		maxSteps = test.Test.MaxSteps
	}

	var out bytes.Buffer
	input := eval.NewQueueSource(test.Test.Input...)
	runErr := eval.Run(context.Background(), test.Test.Source, &out, input, eval.Options{MaxSteps: maxSteps})

	passed, err := checkExpectation(test.Test.Expect, out.String(), runErr)
	return TestResult{
		Test:   test,
		Passed: passed,
		Output: out.String(),
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation checks a run's output and error against the expected outcome
func checkExpectation(expect Expectation, output string, runErr error) (bool, error) {
	if expect.IsEmpty() {
		return false, fmt.Errorf("no expectation specified")
	}

	if expect.Error != "" {
		if runErr == nil {
			return false, fmt.Errorf("expected error %s, got output %q", expect.Error, output)
		}
		if got := errorName(runErr); !strings.EqualFold(got, expect.Error) {
			return false, fmt.Errorf("expected error %s, got %s (%v)", expect.Error, got, runErr)
		}
	} else if runErr != nil {
		return false, fmt.Errorf("unexpected error: %w", runErr)
	}

	if expect.Output != nil && output != *expect.Output {
		return false, fmt.Errorf("expected output %q, got %q", *expect.Output, output)
	}

	if expect.Contains != "" && !strings.Contains(output, expect.Contains) {
		return false, fmt.Errorf("expected output containing %q, got %q", expect.Contains, output)
	}

	if expect.Match != "" {
		re, err := regexp.Compile(expect.Match)
		if err != nil {
			return false, fmt.Errorf("invalid match pattern %q: %w", expect.Match, err)
		}
		if !re.MatchString(output) {
			return false, fmt.Errorf("output %q does not match %q", output, expect.Match)
		}
	}

	return true, nil
}

// errorName classifies a run error the way suites spell it
func errorName(err error) string {
	var lexErr *parser.LexError
	var parseErr *parser.ParseError
	var runtimeErr *eval.RuntimeError
	switch {
	case errors.As(err, &lexErr):
		return "LEX"
	case errors.As(err, &parseErr):
		return "PARSE"
	case errors.As(err, &runtimeErr):
		return runtimeErr.Code.String()
	default:
		return types.E_NONE.String()
	}
}
