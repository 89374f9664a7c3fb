package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		bindings map[string]string
		expected string
	}{
		{
			name:     "plain interpolation",
			source:   `{"name": "{{ TEAM_NAME }}"}`,
			bindings: map[string]string{"TEAM_NAME": "acme"},
			expected: `{"name": "acme"}`,
		},
		{
			name:     "conditional taken",
			source:   `{% if ENV == "prod" %}live{% else %}sandbox{% endif %}`,
			bindings: map[string]string{"ENV": "prod"},
			expected: "live",
		},
		{
			name:     "conditional not taken",
			source:   `{% if ENV == "prod" %}live{% else %}sandbox{% endif %}`,
			bindings: map[string]string{"ENV": "dev"},
			expected: "sandbox",
		},
		{
			name:     "iteration",
			source:   `{% for n in (1..3) %}{{ n }}{% endfor %}`,
			bindings: map[string]string{},
			expected: "123",
		},
		{
			name:     "filter",
			source:   `{{ REGION | upcase }}`,
			bindings: map[string]string{"REGION": "eu-west-1"},
			expected: "EU-WEST-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := NewRenderer(tt.bindings)
			rendered, err := renderer.Render([]byte(tt.source))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rendered)
		})
	}
}

func TestRenderer_Render_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "unterminated tag", source: `{% if ENV`},
		{name: "unknown tag", source: `{% bogus %}{% endbogus %}`},
		{name: "undefined variable", source: `{{ NOT_BOUND }}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := NewRenderer(map[string]string{"ENV": "dev"})
			_, err := renderer.Render([]byte(tt.source))
			assert.Error(t, err)
		})
	}
}

func TestEnvBindings(t *testing.T) {
	t.Setenv("PIXVAULT_TEST_BINDING", "bound-value")

	bindings := EnvBindings()
	assert.Equal(t, "bound-value", bindings["PIXVAULT_TEST_BINDING"])
}
