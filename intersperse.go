package intersperse

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedRenderer = errors.New("unsupported renderer")
	ErrInvalidTemplate     = errors.New("invalid template")
	ErrConsumed            = errors.New("source already consumed")
	ErrPrint               = errors.New("print failed")
	ErrBuild               = errors.New("build failed")
)

// Renderer writes one item to w. A nil Renderer means the default text
// representation of the item.
type Renderer[T any] func(w io.Writer, item T) error

// Write renders the items of seq to w with sep between consecutive items.
// Nothing is written for an empty sequence, and sep is never rendered for a
// single item. The first failed write stops the iteration and its error is
// returned as is.
func Write[T any](w io.Writer, seq iter.Seq[T], sep any) error {
	return write(w, seq, sep, nil)
}

// WriteFunc is like [Write] but renders each item with render. The separator
// is still rendered with its default text representation.
func WriteFunc[T any](w io.Writer, seq iter.Seq[T], sep any, render Renderer[T]) error {
	return write(w, seq, sep, render)
}

// Writeln is like [Write] followed by a single newline. An empty sequence
// writes only the newline.
func Writeln[T any](w io.Writer, seq iter.Seq[T], sep any) error {
	return writeln(w, seq, sep, nil)
}

// WritelnFunc is like [WriteFunc] followed by a single newline.
func WritelnFunc[T any](w io.Writer, seq iter.Seq[T], sep any, render Renderer[T]) error {
	return writeln(w, seq, sep, render)
}

func write[T any](w io.Writer, seq iter.Seq[T], sep any, render Renderer[T]) error {
	if render == nil {
		render = writeItem[T]
	}
	first := true
	var writeErr error
	seq(func(item T) bool {
		if !first {
			if writeErr = writeValue(w, sep); writeErr != nil {
				return false
			}
		}
		first = false
		writeErr = render(w, item)
		return writeErr == nil
	})
	return writeErr
}

func writeln[T any](w io.Writer, seq iter.Seq[T], sep any, render Renderer[T]) error {
	if err := write(w, seq, sep, render); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeItem[T any](w io.Writer, item T) error {
	return writeValue(w, item)
}

// writeValue writes v the way %v prints it, except that []byte is written
// raw instead of as a list of numbers.
func writeValue(w io.Writer, v any) error {
	var err error
	switch v := v.(type) {
	case string:
		_, err = io.WriteString(w, v)
	case []byte:
		_, err = w.Write(v)
	default:
		_, err = fmt.Fprint(w, v)
	}
	return err
}
