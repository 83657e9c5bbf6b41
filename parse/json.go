package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/paramtree/param"
)

// parseJSON reads JSON token by token so that object keys keep their
// document order.
func parseJSON(d []byte, opts *parseOpts) (*param.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := jsonValue(dec, opts.name)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrParse)
	}
	return res, nil
}

func jsonToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected end of JSON input", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return tok, nil
}

func jsonValue(dec *json.Decoder, name string) (*param.Node, error) {
	tok, err := jsonToken(dec)
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		var res *param.Node
		if x == '{' {
			res = param.NewBlock(name)
		} else {
			res = param.NewArray[int](name, nil)
		}
		for i := 0; dec.More(); i++ {
			cname := strconv.Itoa(i)
			if x == '{' {
				kt, err := jsonToken(dec)
				if err != nil {
					return nil, err
				}
				cname = kt.(string)
			}
			c, err := jsonValue(dec, cname)
			if err != nil {
				return nil, err
			}
			if err := res.AddParameter(c); err != nil {
				return nil, err
			}
		}
		if _, err := jsonToken(dec); err != nil {
			return nil, err
		}
		return res, nil
	case bool:
		return param.New(name, x), nil
	case string:
		return param.New(name, x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return param.New(name, i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s: %w", ErrParse, x, err)
		}
		return param.New(name, f), nil
	case nil:
		return nil, fmt.Errorf("%w: %q", ErrNull, name)
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}
