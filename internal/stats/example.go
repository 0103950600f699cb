package stats

// ExampleResults returns a small fixed batch across three prompt formats.
func ExampleResults() []TestResult {
	return []TestResult{
		{TestID: "1", Expected: "YES", Actual: "YES", Correct: true, PromptFormat: "natural", Model: DefaultModel},
		{TestID: "2", Expected: "NO", Actual: "YES", Correct: false, PromptFormat: "natural", Model: DefaultModel},
		{TestID: "3", Expected: "YES", Actual: "YES", Correct: true, PromptFormat: "clinical", Model: DefaultModel},
		{TestID: "4", Expected: "NO", Actual: "NO", Correct: true, PromptFormat: "clinical", Model: DefaultModel},
		{TestID: "5", Expected: "YES", Actual: "NO", Correct: false, PromptFormat: "json", Model: DefaultModel},
		{TestID: "6", Expected: "NO", Actual: "YES", Correct: false, PromptFormat: "json", Model: DefaultModel},
	}
}
