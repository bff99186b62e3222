package domain

import (
	"errors"
	"fmt"
)

// ErrNilNode is returned when a nil node is ticked (e.g. a composite built with a nil child).
var ErrNilNode = errors.New("nil behavior tree node")

// ErrNilActor is returned when a tick is requested without an actor.
var ErrNilActor = errors.New("nil actor")

// ErrNoChildren is returned when a composite that must pick a child has none.
var ErrNoChildren = errors.New("composite has no children")

// ErrIndexOutOfRange is returned when an index selector's condition yields an invalid position.
var ErrIndexOutOfRange = errors.New("selector index out of range")

// ErrResultType is returned when a condition node produces a value of the wrong type.
var ErrResultType = errors.New("unexpected condition result type")

// IndexError reports an index selector condition outside [0, Len).
// Value is set instead when the condition produced an integer that does not fit in an int.
type IndexError struct {
	Index int
	Len   int
	Value any
}

func (e *IndexError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: index %v (%T) overflows int", ErrIndexOutOfRange, e.Value, e.Value)
	}
	return fmt.Sprintf("%s: index %d, %d children", ErrIndexOutOfRange, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// ResultTypeError reports a condition value that cannot be used as Want.
type ResultTypeError struct {
	Want string
	Got  any
}

func (e *ResultTypeError) Error() string {
	return fmt.Sprintf("%s: want %s, got %T (%v)", ErrResultType, e.Want, e.Got, e.Got)
}

func (e *ResultTypeError) Unwrap() error {
	return ErrResultType
}
