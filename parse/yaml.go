package parse

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/signadot/paramtree/param"
)

func parseYAML(d []byte, opts *parseOpts) (*param.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if v == nil {
		return param.NewBlock(opts.name), nil
	}
	return fromYAML(opts.name, v)
}

func fromYAML(name string, v any) (*param.Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: %q", ErrNull, name)
	case yaml.MapSlice:
		res := param.NewBlock(name)
		for _, item := range x {
			c, err := fromYAML(fmt.Sprint(item.Key), item.Value)
			if err != nil {
				return nil, err
			}
			if err := res.AddParameter(c); err != nil {
				return nil, err
			}
		}
		return res, nil
	case []any:
		res := param.NewArray[int](name, nil)
		for i, e := range x {
			c, err := fromYAML(fmt.Sprint(i), e)
			if err != nil {
				return nil, err
			}
			if err := res.AddParameter(c); err != nil {
				return nil, err
			}
		}
		return res, nil
	case uint64:
		return param.FromUint(name, x)
	case time.Time:
		return param.New(name, x.Format(time.RFC3339Nano)), nil
	}
	return param.FromAny(name, v)
}
