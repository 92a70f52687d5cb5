package classify

import (
	"testing"

	"github.com/surveytab/surveytab/pkg/surveytab/models"
)

func TestSplitOption(t *testing.T) {
	tests := []struct {
		name     string
		question string
		option   string
		ok       bool
	}{
		{"Hobby - Reading", "Hobby", "Reading", true},
		{"Hobby - A - B", "Hobby", "A - B", true},
		{" Q1  -  Opt ", "Q1", "Opt", true},
		{"Gender", "", "", false},
		{"Hobby-Reading", "", "", false},
		{" - Reading", "", "", false},
		{"Hobby - ", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		q, opt, ok := SplitOption(tt.name)
		if q != tt.question || opt != tt.option || ok != tt.ok {
			t.Errorf("SplitOption(%q) = (%q, %q, %v), expected (%q, %q, %v)",
				tt.name, q, opt, ok, tt.question, tt.option, tt.ok)
		}
	}
}

func TestBinaryLike(t *testing.T) {
	tests := []struct {
		values   []string
		expected bool
	}{
		{[]string{"0", "1", "1"}, true},
		{[]string{"1", "1", ""}, true},
		{[]string{"0", "0"}, true},
		{[]string{"1.0", "0.0"}, true},
		{[]string{"0", "2"}, false},
		{[]string{"1", "-1"}, false},
		{[]string{"", "", ""}, false},       // all missing
		{[]string{"yes", "no"}, false},      // no numeric values survive coercion
		{[]string{"x", "1", ""}, true},      // stray text dropped from the check
		{nil, false},
	}

	for _, tt := range tests {
		if got := binaryLike(tt.values); got != tt.expected {
			t.Errorf("binaryLike(%v) = %v, expected %v", tt.values, got, tt.expected)
		}
	}
}

func TestClassifyDetectsMAGroup(t *testing.T) {
	table := &models.Table{
		Headers: []string{"Gender", "Hobby - Reading", "Hobby - Sports", "Comment"},
		Records: [][]string{
			{"M", "1", "0", "nice"},
			{"F", "0", "1", ""},
			{"F", "1", "", "ok"},
		},
	}

	c := Classify(table)

	if len(c.Groups) != 1 {
		t.Fatalf("expected 1 MA group, got %d", len(c.Groups))
	}
	g := c.Groups[0]
	if g.Question != "Hobby" {
		t.Errorf("group question = %q, expected Hobby", g.Question)
	}
	if len(g.Options) != 2 || g.Options[0] != "Reading" || g.Options[1] != "Sports" {
		t.Errorf("group options = %v, expected [Reading Sports]", g.Options)
	}
	if len(c.SAColumns) != 2 || c.SAColumns[0] != "Gender" || c.SAColumns[1] != "Comment" {
		t.Errorf("SA columns = %v, expected [Gender Comment]", c.SAColumns)
	}
}

func TestClassifyDemotesSingleMemberGroup(t *testing.T) {
	// Without the separator on one column only one member remains, so the
	// group no longer qualifies and the column reverts to SA.
	table := &models.Table{
		Headers: []string{"Hobby Reading", "Hobby - Sports"},
		Records: [][]string{
			{"1", "0"},
			{"0", "1"},
		},
	}

	c := Classify(table)

	if len(c.Groups) != 0 {
		t.Errorf("expected no MA groups, got %d", len(c.Groups))
	}
	if len(c.SAColumns) != 2 {
		t.Errorf("expected both columns demoted to SA, got %v", c.SAColumns)
	}
}

func TestClassifyNonBinaryColumnStaysSA(t *testing.T) {
	table := &models.Table{
		Headers: []string{"Rating - Food", "Rating - Service"},
		Records: [][]string{
			{"5", "1"},
			{"3", "0"},
		},
	}

	c := Classify(table)

	if len(c.Groups) != 0 {
		t.Errorf("expected no MA groups for non-binary columns, got %d", len(c.Groups))
	}
}

func TestClassifyEmptyTable(t *testing.T) {
	c := Classify(&models.Table{})
	if len(c.Groups) != 0 || len(c.SAColumns) != 0 {
		t.Errorf("empty table should classify to nothing, got %+v", c)
	}
}

func TestClassifyColumnBelongsToOneGroup(t *testing.T) {
	table := &models.Table{
		Headers: []string{"A - X", "A - Y", "B - X", "B - Y"},
		Records: [][]string{
			{"1", "0", "0", "1"},
			{"0", "1", "1", "0"},
		},
	}

	c := Classify(table)

	if len(c.Groups) != 2 {
		t.Fatalf("expected 2 MA groups, got %d", len(c.Groups))
	}
	seen := make(map[string]int)
	for _, g := range c.Groups {
		for _, col := range g.Columns {
			seen[col]++
		}
	}
	for col, n := range seen {
		if n != 1 {
			t.Errorf("column %q belongs to %d groups, expected 1", col, n)
		}
	}
	if len(c.SAColumns) != 0 {
		t.Errorf("expected no SA columns, got %v", c.SAColumns)
	}
}
