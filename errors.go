package fling

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrConfiguration is matched (via errors.Is) by every error caused by a
// misconfigured tree: duplicate tags, nested participants, nested boundaries
// sharing a tag, and missing boundary or navigator context.
var ErrConfiguration = errors.New("fling: configuration error")

// ErrLayoutNotReady is returned when an element is queried before its size
// has been finalized by a layout pass.
var ErrLayoutNotReady = errors.New("fling: layout not ready")

// ConfigurationError describes a tree setup that can never produce a valid
// flight. Tree mutations panic with it; lookups return it.
type ConfigurationError struct {
	Op  string
	Msg string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("fling: %s: %s", e.Op, e.Msg)
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// DuplicateTagError is returned when two participants in the same matching
// scope share a tag.
type DuplicateTagError struct {
	Tag    any
	First  *Node
	Second *Node
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("fling: duplicate tag %v in one boundary scope: %s and %s",
		e.Tag, describeNode(e.First), describeNode(e.Second))
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *DuplicateTagError) Is(target error) bool {
	return target == ErrConfiguration
}

func describeNode(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	path := fmt.Sprintf("%q", n.Name)
	for p := n.Parent; p != nil; p = p.Parent {
		path = fmt.Sprintf("%q/%s", p.Name, path)
	}
	return path
}

func configPanic(op, format string, args ...any) {
	panic(&ConfigurationError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// checkTag rejects tags that cannot key a map. Nil is a valid tag.
func checkTag(op string, tag any) error {
	if tag == nil || reflect.TypeOf(tag).Comparable() {
		return nil
	}
	return &ConfigurationError{Op: op, Msg: fmt.Sprintf("tag of type %T is not comparable", tag)}
}
