package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGroupByFormatKeepsOrder(t *testing.T) {
	groups := GroupByFormat(ExampleResults())

	got := map[string][]string{}
	for format, group := range groups {
		for _, r := range group {
			got[format] = append(got[format], r.TestID)
		}
	}
	want := map[string][]string{
		"natural":  {"1", "2"},
		"clinical": {"3", "4"},
		"json":     {"5", "6"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GroupByFormat mismatch (-want +got):\n%s", diff)
	}
}

func TestBrittleness(t *testing.T) {
	tests := []struct {
		name   string
		groups map[string][]TestResult
		want   float64
	}{
		{name: "nil", groups: nil, want: 0},
		{name: "single group", groups: map[string][]TestResult{"a": batchOf(1, 4)}, want: 0},
		{
			name:   "second group empty",
			groups: map[string][]TestResult{"a": batchOf(1, 4), "b": nil},
			want:   0,
		},
		{
			name:   "identical accuracy",
			groups: map[string][]TestResult{"a": batchOf(1, 2), "b": batchOf(2, 4), "c": batchOf(5, 10)},
			want:   0,
		},
		{
			name:   "spread",
			groups: map[string][]TestResult{"a": batchOf(3, 4), "b": batchOf(1, 4), "c": batchOf(2, 4), "empty": {}},
			want:   50,
		},
		{name: "example batch", groups: GroupByFormat(ExampleResults()), want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Brittleness(tt.groups); !approxEqual(got, tt.want, 1e-9) {
				t.Fatalf("Brittleness = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestBrittlenessIgnoresGroupNames(t *testing.T) {
	a := map[string][]TestResult{"x": batchOf(1, 5), "y": batchOf(4, 5)}
	b := map[string][]TestResult{"renamed-2": batchOf(4, 5), "renamed-1": batchOf(1, 5)}
	if Brittleness(a) != Brittleness(b) {
		t.Fatalf("expected brittleness to ignore names: %f vs %f", Brittleness(a), Brittleness(b))
	}
}
