package vision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptShape(t *testing.T) {
	// The handler parses exactly these keys out of the response.
	for _, key := range []string{`"title"`, `"price"`, `"description"`, `"condition"`, `"location"`} {
		assert.Contains(t, Prompt, key)
	}
	assert.Contains(t, Prompt, "Return ONLY the JSON object")
	assert.Contains(t, Prompt, "under 400 characters")
	assert.Contains(t, Prompt, "Do NOT use placeholder values")

	// dedent must have removed the source indentation
	for _, line := range strings.Split(Prompt, "\n") {
		assert.False(t, strings.HasPrefix(line, "\t"), "line still indented: %q", line)
	}
}
