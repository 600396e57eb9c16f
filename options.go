package pp

import (
	"fmt"
	"slices"
	"strings"
)

// Option is a post-processing option requested by a trailing command token.
type Option int

const (
	// ExportToSink copies the rendered output to the configured [Sink].
	ExportToSink Option = iota + 1
)

var optionTokens = map[string]Option{
	"PB": ExportToSink,
}

// String returns the command token for the option.
func (o Option) String() string {
	for tok, opt := range optionTokens {
		if opt == o {
			return tok
		}
	}
	return fmt.Sprintf("Option(%d)", int(o))
}

// OptionSet is the ordered, duplicate-free set of options parsed from a
// command's trailing tokens.
type OptionSet struct {
	opts []Option
}

// Has reports whether o is in the set.
func (s OptionSet) Has(o Option) bool { return slices.Contains(s.opts, o) }

// Options returns the options in the order they were given.
func (s OptionSet) Options() []Option { return slices.Clone(s.opts) }

// Len returns the number of options in the set.
func (s OptionSet) Len() int { return len(s.opts) }

// ParseOptions consumes option tokens (case-insensitive) from the front of
// tokens. Parsing stops at the first unrecognized token; it and everything
// after it are returned as rest.
func ParseOptions(tokens []string) (set OptionSet, rest []string) {
	for i, tok := range tokens {
		opt, ok := optionTokens[strings.ToUpper(tok)]
		if !ok {
			return set, tokens[i:]
		}
		if !set.Has(opt) {
			set.opts = append(set.opts, opt)
		}
	}
	return set, nil
}

// Step is one stage of a [Pipeline]. It receives the current output and
// returns the (possibly transformed) output.
type Step interface {
	Apply(out string) (string, error)
}

// StepFunc adapts a function to [Step].
type StepFunc func(out string) (string, error)

// Apply calls f(out).
func (f StepFunc) Apply(out string) (string, error) { return f(out) }

// Pipeline is an ordered list of post-render steps.
type Pipeline []Step

// NewPipeline builds the post-render steps for a command. Option side
// effects come first, in option order. For [StructuredPrint] the last step
// colorizes the output, so a sink always receives uncolored text.
func NewPipeline(kind CommandKind, set OptionSet, sink Sink, palette Palette) Pipeline {
	var p Pipeline
	for _, opt := range set.opts {
		switch opt {
		case ExportToSink:
			p = append(p, exportStep(sink))
		}
	}
	if kind == StructuredPrint {
		p = append(p, StepFunc(func(out string) (string, error) {
			return palette.Colorize(out), nil
		}))
	}
	return p
}

// Run applies every step in order, stopping at the first error.
func (p Pipeline) Run(out string) (string, error) {
	for _, step := range p {
		var err error
		out, err = step.Apply(out)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

func exportStep(sink Sink) Step {
	return StepFunc(func(out string) (string, error) {
		if sink == nil {
			return "", fmt.Errorf("%w: no sink configured", ErrSinkUnavailable)
		}
		if err := sink.Copy(out); err != nil {
			return "", fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
		}
		return out, nil
	})
}
