package intersperse

import (
	"fmt"
	"io"
	"text/template"
)

// Template returns a renderer executing a Go [text/template] against each
// item. No newline is added after an item.
//
//	r, err := intersperse.Template[intersperse.Pair[string, int]](`{{printf "%q" .Key}} => {{.Value}}`)
func Template[T any](text string) (Renderer[T], error) {
	tmpl, err := template.New("").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return func(w io.Writer, item T) error {
		return tmpl.Execute(w, item)
	}, nil
}
