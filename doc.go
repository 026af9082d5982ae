// Package intersperse writes a sequence of values with a separator between
// consecutive items, straight into an [io.Writer] and without first joining
// the pieces into a string.
//
// Every entry point shares one rule: nothing is written for an empty
// sequence, a single item is written without a separator, and n items are
// written with exactly n-1 separators in sequence order. The first failed
// write stops the iteration.
//
// # Writing
//
// [Write] and [Writeln] take any [iter.Seq]. Slices adapt with
// [slices.Values]:
//
//	err := intersperse.Write(w, slices.Values([]int{1, 2, 3}), ", ")
//	// 1, 2, 3
//
// The error of the failed write is returned as is, so it can be compared
// with the destination's own errors.
//
// # Renderers
//
// Items are printed as %v prints them unless a [Renderer] is passed to one of
// the Func variants. The separator is never passed to the renderer.
//
//	sq := intersperse.Map(func(i int) int { return i * i }, nil)
//	intersperse.WriteFunc(w, slices.Values([]int{1, 2, 3}), ", ", sq)
//	// 1, 4, 9
//
// Ready-made renderers:
//
//   - [Default], [Quoted], [Sprintf] — fmt based
//   - [Map] — render a derived value
//   - [PairFunc] — destructure a [Pair], see [Pairs] for maps
//   - [Template] — a Go [text/template] per item
//   - [JSON], [YAML] — compact JSON, YAML flow style
//   - [CSVField] — RFC 4180 quoting
//   - [Padded], [Truncated] — fixed display widths
//
// Use [ParseRenderer] to select a renderer from a CLI flag value.
//
// # Strings
//
// [Format], [Formatln], [Join] and their Func variants return the result as
// a string. They never return an error; a failing renderer panics with
// [ErrBuild].
//
// # Printing
//
// [Print], [Println], [Eprint] and [Eprintln] write to standard output or
// standard error. Like the fmt print functions they have no error result,
// but a failed write panics with [ErrPrint] rather than being dropped.
//
// # Values
//
// [Interspersed] bundles a sequence, a separator and a renderer into a value
// implementing [fmt.Formatter] and [io.WriterTo], for use inside larger
// formatted output:
//
//	fmt.Printf("want one of [%q]\n", intersperse.Of(names, ", "))
//	// want one of ["a", "b"]
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedRenderer] — unknown renderer name
//   - [ErrInvalidTemplate] — invalid go-template syntax
//   - [ErrConsumed] — a single-use [Interspersed] rendered twice
//   - [ErrPrint] — a print function failed to write
//   - [ErrBuild] — a string building function's renderer failed
package intersperse
