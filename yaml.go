package intersperse

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML renders each item as a single-line YAML flow node, e.g.
// "{name: Alice, tags: [a, b]}". Long nodes may still be wrapped by the
// encoder.
func YAML[T any]() Renderer[T] {
	return func(w io.Writer, item T) error {
		var node yaml.Node
		if err := node.Encode(item); err != nil {
			return err
		}
		setFlowStyle(&node)
		data, err := yaml.Marshal(&node)
		if err != nil {
			return err
		}
		_, err = w.Write(bytes.TrimSuffix(data, []byte("\n")))
		return err
	}
}

func setFlowStyle(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlowStyle(c)
	}
}
