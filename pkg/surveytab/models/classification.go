package models

import (
	"errors"
	"fmt"
)

// ErrGroupNotFound indicates a referenced MA group does not exist.
var ErrGroupNotFound = errors.New("MA group not found")

// ErrOptionNotFound indicates a referenced option does not exist in its group.
var ErrOptionNotFound = errors.New("MA option not found")

// MAGroup is a multiple-answer question assembled from binary option
// columns that share a "Question - Option" name prefix.
type MAGroup struct {
	// Question is the shared prefix (whitespace-trimmed).
	Question string `json:"question"`
	// Columns are the full member column names, in table order.
	Columns []string `json:"columns"`
	// Options are the option suffixes, aligned with Columns.
	Options []string `json:"options"`
}

// OptionColumn returns the member column name for the given option suffix.
func (g MAGroup) OptionColumn(option string) (string, error) {
	for i, opt := range g.Options {
		if opt == option {
			return g.Columns[i], nil
		}
	}
	return "", fmt.Errorf("%w: %q in group %q", ErrOptionNotFound, option, g.Question)
}

// Classification is the result of one column-classification pass.
// Every table column is either a member of exactly one MA group or
// listed in SAColumns.
type Classification struct {
	// Groups are the detected MA groups, in first-seen order.
	Groups []MAGroup `json:"groups"`
	// SAColumns are all columns outside any MA group, in table order.
	SAColumns []string `json:"sa_columns"`
}

// HasGroups reports whether any MA group was detected.
func (c *Classification) HasGroups() bool {
	return len(c.Groups) > 0
}

// Group returns the MA group with the given question prefix.
func (c *Classification) Group(question string) (MAGroup, error) {
	for _, g := range c.Groups {
		if g.Question == question {
			return g, nil
		}
	}
	return MAGroup{}, fmt.Errorf("%w: %q", ErrGroupNotFound, question)
}

// IsSAColumn reports whether the named column was classified as SA.
func (c *Classification) IsSAColumn(name string) bool {
	for _, col := range c.SAColumns {
		if col == name {
			return true
		}
	}
	return false
}
