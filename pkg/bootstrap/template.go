package bootstrap

import (
	"os"
	"strings"

	"github.com/osteele/liquid"
)

// Renderer renders bootstrap files as liquid templates against a fixed set
// of variable bindings. It performs no I/O of its own.
type Renderer struct {
	engine   *liquid.Engine
	bindings map[string]interface{}
}

// NewRenderer creates a Renderer over the given bindings. Rendering fails
// on malformed syntax and on references to undefined variables or filters.
func NewRenderer(bindings map[string]string) *Renderer {
	engine := liquid.NewEngine()
	engine.StrictVariables()

	vars := make(map[string]interface{}, len(bindings))
	for name, value := range bindings {
		vars[name] = value
	}

	return &Renderer{engine: engine, bindings: vars}
}

// Render renders already-read template source and returns the rendered text.
func (r *Renderer) Render(source []byte) (string, error) {
	out, err := r.engine.ParseAndRender(source, r.bindings)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EnvBindings exposes all process environment variables as a flat
// string-to-string mapping, the variable context every bootstrap file is
// rendered against.
func EnvBindings() map[string]string {
	env := os.Environ()
	bindings := make(map[string]string, len(env))
	for _, kv := range env {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		bindings[name] = value
	}
	return bindings
}
