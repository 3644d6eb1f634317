// Package ruletable tracks the rules inserted into a live stylesheet so they
// can be removed again in bulk.
package ruletable

import (
	"go.trai.ch/stylegen/internal/core/ports"
)

// Table counts the rules held by a stylesheet. Rules are identified only by
// their index, which shifts whenever an earlier rule is inserted or deleted.
// Not safe for concurrent use.
type Table struct {
	sheet ports.Stylesheet
	count int
}

// New creates an empty Table over sheet. The sheet is expected to be empty.
func New(sheet ports.Stylesheet) *Table {
	return &Table{sheet: sheet}
}

// Insert installs rule at index and returns the index the sheet reports.
// The count is unchanged when the sheet rejects the rule.
func (t *Table) Insert(rule string, index int) (int, error) {
	installed, err := t.sheet.InsertRule(rule, index)
	if err != nil {
		return 0, err
	}
	t.count++
	return installed, nil
}

// Delete removes the rule at index.
func (t *Table) Delete(index int) error {
	if err := t.sheet.DeleteRule(index); err != nil {
		return err
	}
	t.count--
	return nil
}

// Clear removes every tracked rule and returns an empty list, also when the
// sheet fails partway. Each deletion targets index 0 since removing a rule
// shifts the rest down.
func (t *Table) Clear() ([]string, error) {
	for t.count > 0 {
		if err := t.sheet.DeleteRule(0); err != nil {
			return []string{}, err
		}
		t.count--
	}
	return []string{}, nil
}

// Len returns the number of rules currently tracked.
func (t *Table) Len() int {
	return t.count
}
