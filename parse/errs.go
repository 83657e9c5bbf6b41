package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/paramtree/param"
)

var (
	ErrParse = errors.New("parse error")
	ErrNull  = fmt.Errorf("%w: null has no parameter form", param.ErrNotRepresentable)
)
