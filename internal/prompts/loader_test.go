package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EnhancePrompt(t *testing.T) {
	prompt, err := Get("enhance.json", "enhance_portfolio")
	require.NoError(t, err)

	assert.Contains(t, prompt, "{{.Name}}")
	assert.Contains(t, prompt, "{{.Skills}}")
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("enhance.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "enhance_portfolio")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Name: {{.Name}}, Title: {{.Title}}", map[string]string{
		"Name":  "Ava Lin",
		"Title": "Engineer",
	})
	assert.Equal(t, "Name: Ava Lin, Title: Engineer", out)
}

func TestFormat_UnmatchedPlaceholderLeftIntact(t *testing.T) {
	out := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", out)
}
