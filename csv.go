package intersperse

import (
	"bytes"
	"encoding/csv"
	"io"
)

// CSVField renders each item as a single CSV field, quoting it when it holds
// a comma, quote, newline or leading space. Use it with a "," separator to
// emit one CSV record.
func CSVField[T any]() Renderer[T] {
	return func(w io.Writer, item T) error {
		var field bytes.Buffer
		if err := writeValue(&field, item); err != nil {
			return err
		}
		var buf bytes.Buffer
		cw := csv.NewWriter(&buf)
		if err := cw.Write([]string{field.String()}); err != nil {
			return err
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
		return err
	}
}
