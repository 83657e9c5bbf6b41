package gomap

import "fmt"

// MarshalError represents an error during encoding
type MarshalError struct {
	FieldPath string // Field path (e.g., "solver.groups[2]")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("marshal error: %s", msg)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during decoding
type UnmarshalError struct {
	FieldPath string // Field path (e.g., "solver.groups[2]")
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("unmarshal error: %s", msg)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// TypeError represents a type mismatch error
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
	Message   string
	Err       error
}

func (e *TypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}
