package intersperse

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON renders each item as compact JSON without a trailing newline.
func JSON[T any]() Renderer[T] {
	return func(w io.Writer, item T) error {
		data, err := jsonAPI.Marshal(item)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
}
