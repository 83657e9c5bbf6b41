package parse

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/signadot/paramtree/ctyval"
	"github.com/signadot/paramtree/param"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

var hclFunctions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"concat": stdlib.ConcatFunc,
	"floor":  stdlib.FloorFunc,
	"format": stdlib.FormatFunc,
	"join":   stdlib.JoinFunc,
	"length": stdlib.LengthFunc,
	"lower":  stdlib.LowerFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"range":  stdlib.RangeFunc,
	"upper":  stdlib.UpperFunc,
}

func parseHCL(d []byte, opts *parseOpts) (*param.Node, error) {
	f, diags := hclparse.NewParser().ParseHCL(d, opts.filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrParse, diags)
	}
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected HCL body %T", ErrParse, f.Body)
	}
	vars, err := ctyval.Variables(opts.vars)
	if err != nil {
		return nil, err
	}
	ctx := &hcl.EvalContext{Variables: vars, Functions: hclFunctions}
	res := param.NewBlock(opts.name)
	if err := hclBody(res, body, ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// hclItem is an attribute or a block, ordered by source position.
type hclItem struct {
	pos   int
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func hclBody(dst *param.Node, body *hclsyntax.Body, ctx *hcl.EvalContext) error {
	items := make([]hclItem, 0, len(body.Attributes)+len(body.Blocks))
	for _, a := range body.Attributes {
		items = append(items, hclItem{pos: a.SrcRange.Start.Byte, attr: a})
	}
	for _, b := range body.Blocks {
		items = append(items, hclItem{pos: b.TypeRange.Start.Byte, block: b})
	}
	slices.SortFunc(items, func(a, b hclItem) int { return cmp.Compare(a.pos, b.pos) })

	// BLOCKs created for labeled blocks, by type
	labeled := map[string]*param.Node{}
	for _, it := range items {
		if it.attr != nil {
			v, diags := it.attr.Expr.Value(ctx)
			if diags.HasErrors() {
				return fmt.Errorf("%w: %w", ErrParse, diags)
			}
			c, err := ctyval.ToNode(it.attr.Name, v)
			if err != nil {
				return fmt.Errorf("%s: %w", it.attr.SrcRange, err)
			}
			if err := dst.AddParameter(c); err != nil {
				return err
			}
			continue
		}
		b := it.block
		if len(b.Labels) == 0 {
			c := param.NewBlock(b.Type)
			if err := hclBody(c, b.Body, ctx); err != nil {
				return err
			}
			if err := dst.AddParameter(c); err != nil {
				return err
			}
			continue
		}
		cur, ok := labeled[b.Type]
		if !ok {
			cur = param.NewBlock(b.Type)
			labeled[b.Type] = cur
			if err := dst.AddParameter(cur); err != nil {
				return err
			}
		}
		for _, l := range b.Labels {
			next, err := cur.GetParam(l)
			if err != nil {
				next = param.NewBlock(l)
				if err := cur.AddParameter(next); err != nil {
					return err
				}
			}
			cur = next
		}
		if err := hclBody(cur, b.Body, ctx); err != nil {
			return err
		}
	}
	return nil
}
