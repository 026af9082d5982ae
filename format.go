package intersperse

import (
	"bytes"
	"fmt"
	"iter"
	"slices"

	"github.com/indigo-web/utils/uf"
)

// Format renders seq into a new string with sep between consecutive items.
func Format[T any](seq iter.Seq[T], sep any) string {
	return build(seq, sep, nil, 0, false)
}

// FormatFunc is like [Format] but renders each item with render.
//
// Writes to the internal buffer cannot fail, so an error returned by render
// is treated as a programming error and panics with [ErrBuild].
func FormatFunc[T any](seq iter.Seq[T], sep any, render Renderer[T]) string {
	return build(seq, sep, render, 0, false)
}

// Formatln is like [Format] with a trailing newline.
func Formatln[T any](seq iter.Seq[T], sep any) string {
	return build(seq, sep, nil, 0, true)
}

// FormatlnFunc is like [FormatFunc] with a trailing newline.
func FormatlnFunc[T any](seq iter.Seq[T], sep any, render Renderer[T]) string {
	return build(seq, sep, render, 0, true)
}

// Join is [Format] over a slice. The buffer is pre-sized from len(items).
func Join[T any](items []T, sep any) string {
	return build(slices.Values(items), sep, nil, sizeHint(len(items)), false)
}

// JoinFunc is [FormatFunc] over a slice.
func JoinFunc[T any](items []T, sep any, render Renderer[T]) string {
	return build(slices.Values(items), sep, render, sizeHint(len(items)), false)
}

// sizeHint is a lower bound on the output size of n items: one byte per item
// and one per separator, rounded up.
func sizeHint(n int) int {
	return n * 2
}

func build[T any](seq iter.Seq[T], sep any, render Renderer[T], hint int, newline bool) string {
	var buf bytes.Buffer
	buf.Grow(hint)
	var err error
	if newline {
		err = writeln(&buf, seq, sep, render)
	} else {
		err = write(&buf, seq, sep, render)
	}
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrBuild, err))
	}
	// buf is dropped here, so its bytes can back the string without a copy.
	return uf.B2S(buf.Bytes())
}
