package intersperse

import (
	"fmt"
	"io"
	"iter"
	"os"
)

// Process-wide destinations of the print functions.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Print writes seq to standard output with sep between consecutive items.
// Unlike [Write] it has no error result: a failed write panics with an error
// wrapping [ErrPrint] and the cause.
func Print[T any](seq iter.Seq[T], sep any) {
	must(write(stdout, seq, sep, nil))
}

// PrintFunc is like [Print] but renders each item with render.
func PrintFunc[T any](seq iter.Seq[T], sep any, render Renderer[T]) {
	must(write(stdout, seq, sep, render))
}

// Println is like [Print] followed by a newline.
func Println[T any](seq iter.Seq[T], sep any) {
	must(writeln(stdout, seq, sep, nil))
}

// PrintlnFunc is like [PrintFunc] followed by a newline.
func PrintlnFunc[T any](seq iter.Seq[T], sep any, render Renderer[T]) {
	must(writeln(stdout, seq, sep, render))
}

// Eprint is like [Print] but writes to standard error.
func Eprint[T any](seq iter.Seq[T], sep any) {
	must(write(stderr, seq, sep, nil))
}

// EprintFunc is like [PrintFunc] but writes to standard error.
func EprintFunc[T any](seq iter.Seq[T], sep any, render Renderer[T]) {
	must(write(stderr, seq, sep, render))
}

// Eprintln is like [Println] but writes to standard error.
func Eprintln[T any](seq iter.Seq[T], sep any) {
	must(writeln(stderr, seq, sep, nil))
}

// EprintlnFunc is like [PrintlnFunc] but writes to standard error.
func EprintlnFunc[T any](seq iter.Seq[T], sep any, render Renderer[T]) {
	must(writeln(stderr, seq, sep, render))
}

func must(err error) {
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrPrint, err))
	}
}
