package intersperse

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"
	"sync/atomic"

	"github.com/indigo-web/utils/uf"
)

// Interspersed is a sequence, a separator and a renderer bundled into a value
// that prints itself, so it can be passed to fmt verbs or written to any
// [io.Writer] with WriteTo.
//
// Values built with [New] or [NewFunc] render once: a second rendering
// reports [ErrConsumed] instead of ranging over the sequence again. Call
// [Interspersed.Repeatable] when the sequence can be ranged over more than
// once. Values built with [Of] or [OfFunc] are always repeatable.
type Interspersed[T any] struct {
	seq        iter.Seq[T]
	sep        any
	render     Renderer[T]
	size       int
	repeatable bool
	consumed   atomic.Bool
}

var (
	_ fmt.Stringer  = (*Interspersed[int])(nil)
	_ fmt.Formatter = (*Interspersed[int])(nil)
	_ io.WriterTo   = (*Interspersed[int])(nil)
)

// New returns a single-use value rendering seq with sep between items.
func New[T any](seq iter.Seq[T], sep any) *Interspersed[T] {
	return &Interspersed[T]{seq: seq, sep: sep}
}

// NewFunc is like [New] with a custom item renderer.
func NewFunc[T any](seq iter.Seq[T], sep any, render Renderer[T]) *Interspersed[T] {
	return &Interspersed[T]{seq: seq, sep: sep, render: render}
}

// Of returns a repeatable value rendering items with sep between them.
func Of[T any](items []T, sep any) *Interspersed[T] {
	return OfFunc(items, sep, nil)
}

// OfFunc is like [Of] with a custom item renderer.
func OfFunc[T any](items []T, sep any, render Renderer[T]) *Interspersed[T] {
	return &Interspersed[T]{
		seq:        slices.Values(items),
		sep:        sep,
		render:     render,
		size:       len(items),
		repeatable: true,
	}
}

// Repeatable returns a copy of s that may be rendered any number of times.
// The sequence must yield the same items on every range.
func (s *Interspersed[T]) Repeatable() *Interspersed[T] {
	return &Interspersed[T]{
		seq:        s.seq,
		sep:        s.sep,
		render:     s.render,
		size:       s.size,
		repeatable: true,
	}
}

// WriteTo writes the interspersed items to w.
func (s *Interspersed[T]) WriteTo(w io.Writer) (int64, error) {
	if !s.claim() {
		return 0, ErrConsumed
	}
	cw := &countingWriter{w: w}
	err := write(cw, s.seq, s.sep, s.render)
	return cw.n, err
}

// String returns the interspersed items as a string. Failures are reported
// inline in the fmt style, e.g. "%!v(intersperse: source already consumed)".
func (s *Interspersed[T]) String() string {
	if !s.claim() {
		return badValue('v', ErrConsumed)
	}
	var buf bytes.Buffer
	buf.Grow(sizeHint(s.size))
	if err := write(&buf, s.seq, s.sep, s.render); err != nil {
		return buf.String() + badValue('v', err)
	}
	return uf.B2S(buf.Bytes())
}

// Format implements [fmt.Formatter]. Without a custom renderer every item is
// printed with the verb and flags in use, so %q quotes each item and %5d pads
// each number. The separator is always printed as with %v.
func (s *Interspersed[T]) Format(f fmt.State, verb rune) {
	if !s.claim() {
		_, _ = io.WriteString(f, badValue(verb, ErrConsumed))
		return
	}
	render := s.render
	if render == nil {
		if directive := fmt.FormatString(f, verb); directive != "%v" && directive != "%s" {
			render = func(w io.Writer, item T) error {
				_, err := fmt.Fprintf(w, directive, item)
				return err
			}
		}
	}
	if err := write(f, s.seq, s.sep, render); err != nil {
		_, _ = io.WriteString(f, badValue(verb, err))
	}
}

func (s *Interspersed[T]) claim() bool {
	if s.repeatable {
		return true
	}
	return s.consumed.CompareAndSwap(false, true)
}

func badValue(verb rune, err error) string {
	return fmt.Sprintf("%%!%c(intersperse: %v)", verb, err)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
