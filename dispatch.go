package pp

import (
	"context"
	"fmt"

	"github.com/bjaus/pp/internal/logging"
)

const (
	minArgs = 1
	maxArgs = 2
)

const subsystem = "Dispatcher"

// Encoding holds the renderer settings shared by all commands.
type Encoding struct {
	Palette Palette
	Indent  string
	Border  BorderStyle
	CSV     CSVOptions
}

// DefaultEncoding returns the default renderer settings.
func DefaultEncoding() Encoding {
	return Encoding{
		Palette: DefaultPalette(),
		Indent:  DefaultIndent,
		Border:  BorderASCII,
		CSV:     CSVOptions{Delimiter: ','},
	}
}

// Render encodes s for the given command. [StructuredPrint] output is not
// colorized here; colorization is the last step of the command's
// [Pipeline].
func (e Encoding) Render(kind CommandKind, s Shape) (string, error) {
	switch kind {
	case StructuredPrint:
		return EncodeJSON(s, e.Indent)
	case TablePrint:
		return EncodeTable(s, e.Border)
	case DelimitedPrint:
		return EncodeCSV(s, e.CSV)
	case MarkupPrint:
		return EncodeHTML(s)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, kind)
	}
}

// Dispatcher runs commands against a [Store]. It holds no per-invocation
// state.
type Dispatcher struct {
	Store    Store
	Sink     Sink
	Encoding Encoding
}

// NewDispatcher returns a Dispatcher with [DefaultEncoding].
func NewDispatcher(store Store, sink Sink) *Dispatcher {
	return &Dispatcher{Store: store, Sink: sink, Encoding: DefaultEncoding()}
}

// Run executes command kind with args, which are the key followed by an
// optional option token. An absent key yields a null [Result].
func (d *Dispatcher) Run(ctx context.Context, kind CommandKind, args []string) (Result, error) {
	if len(args) < minArgs || len(args) > maxArgs {
		return Result{}, fmt.Errorf("%w: %s takes %d to %d arguments, got %d", ErrWrongArity, kind, minArgs, maxArgs, len(args))
	}
	key := args[0]
	opts, rest := ParseOptions(args[1:])
	if len(rest) > 0 {
		logging.Warn(subsystem, "%s %q: ignoring unrecognized tokens %q", kind, key, rest)
	}

	t, err := d.Store.Type(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("type of %q: %w", key, err)
	}
	switch t {
	case TypeAbsent:
		logging.Debug(subsystem, "%s %q: key absent", kind, key)
		return Result{Null: true}, nil
	case TypeUnsupported:
		return Result{}, fmt.Errorf("%w: %q is not a hash, list or set", ErrWrongType, key)
	}

	reply, err := d.Store.Fetch(ctx, key, t)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q: %w", ErrKeyNotFound, key, err)
	}
	shape, err := Normalize(t, reply)
	if err != nil {
		return Result{}, err
	}
	if shape == nil {
		return Result{Null: true}, nil
	}

	out, err := d.Encoding.Render(kind, shape)
	if err != nil {
		return Result{}, err
	}
	out, err = NewPipeline(kind, opts, d.Sink, d.Encoding.Palette).Run(out)
	if err != nil {
		return Result{}, err
	}
	logging.Debug(subsystem, "%s %q: rendered %s with %d option(s)", kind, key, t, opts.Len())
	return Result{Value: out}, nil
}
