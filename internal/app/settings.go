package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// DefaultSettingsFile is the settings file looked up in the working
// directory when no explicit path is given.
const DefaultSettingsFile = "recipekit.hcl"

// fileSettings is the HCL schema of the settings file. Every field is
// optional; unset fields leave the corresponding Config value untouched.
type fileSettings struct {
	Registry *registrySettings `hcl:"registry,block"`
	Logging  *loggingSettings  `hcl:"logging,block"`
}

type registrySettings struct {
	URL         string `hcl:"url,optional"`
	CacheTTL    string `hcl:"cache_ttl,optional"`
	MaxAttempts int    `hcl:"max_attempts,optional"`
}

type loggingSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// LoadSettings decodes the HCL settings file at path into cfg. Expressions
// in the file may reference the process environment through the `env`
// object, e.g. `url = env.RECIPEKIT_REGISTRY`.
func LoadSettings(path string, cfg *Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	file, diags := hclsyntax.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return fmt.Errorf("parsing settings file %s: %s", path, diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envObject()},
	}
	var settings fileSettings
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &settings); diags.HasErrors() {
		return fmt.Errorf("decoding settings file %s: %s", path, diags.Error())
	}

	if reg := settings.Registry; reg != nil {
		if reg.URL != "" {
			cfg.RegistryURL = reg.URL
		}
		if reg.CacheTTL != "" {
			ttl, err := time.ParseDuration(reg.CacheTTL)
			if err != nil {
				return fmt.Errorf("settings file %s: invalid cache_ttl %q: %w", path, reg.CacheTTL, err)
			}
			cfg.CacheTTL = ttl
		}
		if reg.MaxAttempts != 0 {
			cfg.MaxAttempts = reg.MaxAttempts
		}
	}
	if logging := settings.Logging; logging != nil {
		if logging.Level != "" {
			cfg.LogLevel = logging.Level
		}
		if logging.Format != "" {
			cfg.LogFormat = logging.Format
		}
	}
	return nil
}

// envObject exposes the process environment as a cty object so settings
// expressions can reference variables by name.
func envObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok && name != "" {
			vars[name] = cty.StringVal(value)
		}
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
