package intersperse

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

const templatePrefix = "go-template="

var rendererNames = []string{"plain", "quoted", "json", "yaml", "csv"}

// Renderers returns the renderer names recognized by [ParseRenderer].
// Templates are not included because they are parameterized.
func Renderers() []string {
	out := make([]string, len(rendererNames))
	copy(out, rendererNames)
	return out
}

// ParseRenderer returns the renderer for a name such as a CLI flag value.
// It recognizes the names listed by [Renderers], "go-template=<tmpl>"
// strings, and the empty string as an alias of "plain".
func ParseRenderer(name string) (Renderer[any], error) {
	if text, ok := strings.CutPrefix(name, templatePrefix); ok {
		return Template[any](text)
	}
	switch name {
	case "", "plain":
		return Default[any](), nil
	case "quoted":
		return Quoted[any](), nil
	case "json":
		return JSON[any](), nil
	case "yaml":
		return YAML[any](), nil
	case "csv":
		return CSVField[any](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRenderer, name)
	}
}

// Default renders items as %v does. A []byte item is written raw.
func Default[T any]() Renderer[T] {
	return writeItem[T]
}

// Quoted renders items with %q.
func Quoted[T any]() Renderer[T] {
	return Sprintf[T]("%q")
}

// Sprintf renders each item with the given fmt format, which should consume
// exactly one operand.
func Sprintf[T any](format string) Renderer[T] {
	return func(w io.Writer, item T) error {
		_, err := fmt.Fprintf(w, format, item)
		return err
	}
}

// Map renders f(item) with render, or with the default renderer if render
// is nil.
func Map[T, U any](f func(T) U, render Renderer[U]) Renderer[T] {
	if render == nil {
		render = writeItem[U]
	}
	return func(w io.Writer, item T) error {
		return render(w, f(item))
	}
}

// Pair is a key and value yielded together, such as a map entry.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Pairs adapts a two-value sequence, e.g. from [maps.All], into a sequence
// of [Pair].
func Pairs[K, V any](seq iter.Seq2[K, V]) iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range seq {
			if !yield(Pair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// PairFunc renders a [Pair] by passing its fields to f.
func PairFunc[K, V any](f func(w io.Writer, key K, value V) error) Renderer[Pair[K, V]] {
	return func(w io.Writer, p Pair[K, V]) error {
		return f(w, p.Key, p.Value)
	}
}
