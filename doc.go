// Package pp pretty-prints the value of a hash, list or set key.
//
// A value is fetched from a [Store], normalized into a [Shape] and encoded
// by one of four commands:
//
//   - [StructuredPrint] (pp.j) — indented, colorized JSON
//   - [TablePrint] (pp.t) — an aligned table
//   - [DelimitedPrint] (pp.c) — CSV
//   - [MarkupPrint] (pp.h) — an HTML table or list
//
// The central entry point is [Dispatcher.Run]:
//
//	d := pp.NewDispatcher(store, pp.ClipboardSink{})
//	res, err := d.Run(ctx, pp.TablePrint, []string{"user:1"})
//
// # Shapes
//
// [Normalize] turns a store reply into a [Mapping] (ordered, unique keys),
// a [Sequence] (ordered, duplicates allowed) or a [Collection] (distinct
// items). Mappings render with a header row of keys in table and CSV
// output; sequences and collections render as a single row.
//
// # Options
//
// Trailing command tokens are parsed by [ParseOptions]. The only option
// today is PB ([ExportToSink]), which copies the output to a [Sink]. Option
// side effects run in a [Pipeline] before the final colorization of JSON
// output, so the sink receives plain JSON.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrWrongArity] — the command got no key or too many arguments
//   - [ErrWrongType] — the key holds something other than a hash, list or set
//   - [ErrKeyNotFound] — the key vanished between the type check and the fetch
//   - [ErrMalformedReply] — a hash reply had an odd number of elements
//   - [ErrSinkUnavailable] — the PB copy failed
//
// An absent key is not an error; it yields a null [Result].
package pp
