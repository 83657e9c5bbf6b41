package encode

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/paramtree/param"
)

func encodeYAML(node *param.Node, w io.Writer, es *EncState) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent), yaml.IndentSequence(true))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts node to values the YAML encoder renders in tree order:
// BLOCKs become MapSlices.
func toYAML(node *param.Node) (any, error) {
	switch node.Type() {
	case param.BlockKind:
		res := make(yaml.MapSlice, 0, node.NumParameters())
		for _, p := range node.All() {
			v, err := toYAML(p)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: p.Name(), Value: v})
		}
		return res, nil
	case param.ArrayKind:
		res := make([]any, 0, node.NumParameters())
		for _, p := range node.All() {
			v, err := toYAML(p)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case param.UserDataKind, param.InvalidKind:
		return nil, notRepresentable(node, "YAML")
	}
	return param.ToAny(node)
}
