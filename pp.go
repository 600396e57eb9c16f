package pp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrWrongArity       = errors.New("wrong number of arguments")
	ErrWrongType        = errors.New("wrong type")
	ErrKeyNotFound      = errors.New("key not found")
	ErrMalformedReply   = errors.New("malformed reply")
	ErrSinkUnavailable  = errors.New("sink unavailable")
	ErrUnsupportedShape = errors.New("unsupported shape")
	ErrUnknownCommand   = errors.New("unknown command")
)

// CommandKind identifies which encoding a command produces.
type CommandKind int

const (
	StructuredPrint CommandKind = iota + 1
	TablePrint
	DelimitedPrint
	MarkupPrint
)

var commands = []CommandKind{StructuredPrint, TablePrint, DelimitedPrint, MarkupPrint}

var commandNames = map[CommandKind]string{
	StructuredPrint: "pp.j",
	TablePrint:      "pp.t",
	DelimitedPrint:  "pp.c",
	MarkupPrint:     "pp.h",
}

// String returns the command name, e.g. "pp.j".
func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Commands returns all command kinds in registration order.
func Commands() []CommandKind {
	out := make([]CommandKind, len(commands))
	copy(out, commands)
	return out
}

// ParseCommand parses a command name. Both the full name ("pp.j") and the
// bare suffix ("j") are accepted, case-insensitively.
func ParseCommand(s string) (CommandKind, error) {
	name := strings.ToLower(s)
	for _, k := range commands {
		full := commandNames[k]
		if name == full || name == strings.TrimPrefix(full, "pp.") {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Result is the outcome of a successful command. Null is set when the key
// does not exist; Value is empty in that case.
type Result struct {
	Value string
	Null  bool
}

// String returns the value, or "(nil)" for a null result.
func (r Result) String() string {
	if r.Null {
		return "(nil)"
	}
	return r.Value
}
