// Package sheet provides an in-memory stylesheet that accepts and removes rules by index.
package sheet

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stylesheet = (*Sheet)(nil)

// Sheet is an ordered list of CSS rules. Not safe for concurrent use.
type Sheet struct {
	rules []string
}

// New creates an empty Sheet.
func New() *Sheet {
	return &Sheet{}
}

// InsertRule inserts rule before the rule currently at index. index may equal
// Len to append. The rule must be exactly one well-formed CSS rule.
func (s *Sheet) InsertRule(rule string, index int) (int, error) {
	if index < 0 || index > len(s.rules) {
		return 0, s.outOfRange(index)
	}
	if !validRule(rule) {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidRule, fmt.Sprintf("cannot insert %q", rule)), domain.MetaIndex, index)
	}

	s.rules = slices.Insert(s.rules, index, strings.TrimSpace(rule))
	return index, nil
}

// DeleteRule removes the rule at index. Every later rule moves down by one.
func (s *Sheet) DeleteRule(index int) error {
	if index < 0 || index >= len(s.rules) {
		return s.outOfRange(index)
	}

	s.rules = slices.Delete(s.rules, index, index+1)
	return nil
}

// Rules returns a copy of the current rules in order.
func (s *Sheet) Rules() []string {
	return slices.Clone(s.rules)
}

// Len returns the number of rules.
func (s *Sheet) Len() int {
	return len(s.rules)
}

// String returns the rules joined by newlines.
func (s *Sheet) String() string {
	return strings.Join(s.rules, "\n")
}

func (s *Sheet) outOfRange(index int) error {
	err := zerr.Wrap(domain.ErrRuleIndexOutOfRange, fmt.Sprintf("index %d", index))
	err = zerr.With(err, domain.MetaIndex, index)
	return zerr.With(err, domain.MetaLength, len(s.rules))
}
