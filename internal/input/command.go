package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMissingField is returned when a field the command type requires is absent
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField is returned when a field has the wrong type or is out of range
	ErrInvalidField = errors.New("invalid field")
)

// ParseError reports a command that could not be turned into a Command.
type ParseError struct {
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	if e.Kind == KindNone {
		return fmt.Sprintf("parse command: %v", e.Err)
	}
	return fmt.Sprintf("parse %s command: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseCommand decodes one JSON command object and checks the fields its type
// requires. A missing or unknown type yields a Command with KindNone and no error.
func ParseCommand(raw []byte) (Command, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return Command{}, &ParseError{Err: err}
	}
	if fields == nil {
		return Command{}, &ParseError{Err: errors.New("command must be a JSON object")}
	}
	if _, err := dec.Token(); err != io.EOF {
		return Command{}, &ParseError{Err: errors.New("trailing data after command object")}
	}

	kind, _ := fields["type"].(string)
	cmd := Command{Kind: Kind(kind)}

	var err error
	switch cmd.Kind {
	case KindClick, KindRightClick:
		err = parsePoint(fields, &cmd)
	case KindMouseDown, KindMouseUp:
		if err = parsePoint(fields, &cmd); err == nil {
			cmd.Button, err = buttonField(fields, "button")
		}
	case KindScroll:
		// The wheel amount is negated, so it must stay in range after negation.
		cmd.Delta, err = intField(fields, "delta", false)
		if err == nil && cmd.Delta == math.MinInt32 {
			err = fmt.Errorf("%w %q: %d is out of range", ErrInvalidField, "delta", cmd.Delta)
		}
	case KindKeyDown:
		cmd.Key, err = stringField(fields, "key")
	case KindText:
		cmd.Text, err = stringField(fields, "text")
	default:
		return Command{}, nil
	}
	if err != nil {
		return Command{}, &ParseError{Kind: cmd.Kind, Err: err}
	}
	return cmd, nil
}

func parsePoint(fields map[string]any, cmd *Command) error {
	var err error
	if cmd.X, err = intField(fields, "x", true); err != nil {
		return err
	}
	cmd.Y, err = intField(fields, "y", true)
	return err
}

// intField coerces a field to an int within the int32 range the native calls
// take. Numbers are truncated toward zero. Strings holding a base-10 integer
// are accepted only when allowString is set.
func intField(fields map[string]any, name string, allowString bool) (int, error) {
	v, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingField, name)
	}

	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return checkInt32(name, i)
		}
		f, err := n.Float64()
		if err != nil || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
			return 0, fmt.Errorf("%w %q: %s is out of range", ErrInvalidField, name, n)
		}
		return int(f), nil
	case string:
		if !allowString {
			break
		}
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %q is not an integer", ErrInvalidField, name, n)
		}
		return checkInt32(name, i)
	}
	return 0, fmt.Errorf("%w %q: expected a number, got %T", ErrInvalidField, name, v)
}

func checkInt32(name string, i int64) (int, error) {
	if i > math.MaxInt32 || i < math.MinInt32 {
		return 0, fmt.Errorf("%w %q: %d is out of range", ErrInvalidField, name, i)
	}
	return int(i), nil
}

func stringField(fields map[string]any, name string) (string, error) {
	v, ok := fields[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingField, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w %q: expected a string, got %T", ErrInvalidField, name, v)
	}
	return s, nil
}

// buttonField reads an optional button name, defaulting to the left button.
func buttonField(fields map[string]any, name string) (Button, error) {
	v, ok := fields[name]
	if !ok || v == nil {
		return ButtonLeft, nil
	}
	s, _ := v.(string)
	switch s {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	}
	return 0, fmt.Errorf("%w %q: unknown button %v", ErrInvalidField, name, v)
}
