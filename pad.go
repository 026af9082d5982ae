package intersperse

import (
	"bytes"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment controls where padding goes in [Padded].
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Padded renders an item with render (the default renderer if nil) and pads
// it with spaces to width terminal columns. Wide characters count as two
// columns. Items already at least width columns wide are not cut; combine
// with [Truncated] for fixed-width output.
func Padded[T any](width int, align Alignment, render Renderer[T]) Renderer[T] {
	return reformat(render, func(s string) string {
		return alignCell(s, width, align)
	})
}

// Truncated renders an item and cuts it to at most width terminal columns,
// ending it with "..." when width leaves room for it.
func Truncated[T any](width int, render Renderer[T]) Renderer[T] {
	return reformat(render, func(s string) string {
		return truncateCell(s, width)
	})
}

func reformat[T any](render Renderer[T], f func(string) string) Renderer[T] {
	if render == nil {
		render = writeItem[T]
	}
	return func(w io.Writer, item T) error {
		var buf bytes.Buffer
		if err := render(&buf, item); err != nil {
			return err
		}
		_, err := io.WriteString(w, f(buf.String()))
		return err
	}
}

func truncateCell(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
