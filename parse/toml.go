package parse

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/signadot/paramtree/param"
)

func parseTOML(d []byte, opts *parseOpts) (*param.Node, error) {
	var m map[string]any
	if err := toml.Unmarshal(d, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return param.FromAny(opts.name, normalizeTOML(m))
}

// normalizeTOML replaces the TOML date and time values by RFC 3339 strings.
func normalizeTOML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		if x == nil {
			return map[string]any{}
		}
		for k, e := range x {
			x[k] = normalizeTOML(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = normalizeTOML(e)
		}
		return x
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case toml.LocalDate:
		return x.String()
	case toml.LocalTime:
		return x.String()
	case toml.LocalDateTime:
		return x.String()
	}
	return v
}
