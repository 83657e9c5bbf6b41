package dirbuild

import (
	"fmt"
	"os"

	"github.com/signadot/paramtree/debug"
	"github.com/signadot/paramtree/param"
	"github.com/signadot/paramtree/parse"
)

const (
	EnvEnv = "PTREE_ENV"
)

// LoadEnv reads an env from the YAML or JSON value of $PTREE_ENV.
func LoadEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	n, err := parse.Parse([]byte(envEnv))
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	envAny, err := param.ToAny(n)
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	theEnvEnv, ok := envAny.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error decoding env $%s: wrong type %s", EnvEnv, n.Type())
	}
	if debug.Build() {
		debug.Logf("\nloaded env from env: %v\n", theEnvEnv)
	}
	return theEnvEnv, nil
}
