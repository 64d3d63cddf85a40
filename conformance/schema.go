package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single program run within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"`      // bool or string
	Source      string      `yaml:"source"`              // complete BASIC program
	Input       []string    `yaml:"input,omitempty"`     // lines served to INPUT
	MaxSteps    int         `yaml:"max_steps,omitempty"` // 0 uses the runner default
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what a run must produce
type Expectation struct {
	Output   *string `yaml:"output,omitempty"`   // exact PRINT output
	Error    string  `yaml:"error,omitempty"`    // E_TYPE, E_DIV, ..., or LEX / PARSE
	Match    string  `yaml:"match,omitempty"`    // regex over the output
	Contains string  `yaml:"contains,omitempty"` // substring of the output
}

// IsEmpty reports whether no expectation was given
func (e Expectation) IsEmpty() bool {
	return e.Output == nil && e.Error == "" && e.Match == "" && e.Contains == ""
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
