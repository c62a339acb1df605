// Package errors provides sentinel errors and error types for the gravity-games engines.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move that is not in the legal move set.
	ErrInvalidMove = errors.New("invalid move")

	// ErrWrongTurn indicates a move submitted by the side not on turn.
	// It wraps ErrInvalidMove so either sentinel matches.
	ErrWrongTurn = fmt.Errorf("wrong side to move: %w", ErrInvalidMove)

	// ErrInvalidPosition indicates a malformed position string or encoded grid.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidAction indicates an action index outside the action space.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a request that needs a game still in progress.
	ErrGameOver = errors.New("game is over")
)

// MoveError wraps errors with match context, including variant name,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err     error  // The underlying error
	Variant string // Variant name (gravity, football)
	Match   string // Match identifier (if known)
	Ply     int    // Ply number where the error occurred (0 if not applicable)
	Move    string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Variant != "" {
		parts = append(parts, e.Variant)
	}
	if e.Match != "" {
		parts = append(parts, fmt.Sprintf("match %s", e.Match))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// PositionError reports where a position string failed to parse.
type PositionError struct {
	Err      error  // The underlying error
	Field    string // Notation field name (placement, side, castling, ...)
	Offset   int    // Byte offset inside the field (0 if not applicable)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Offset > 0 {
			loc += fmt.Sprintf("@%d", e.Offset)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "position error"
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
