package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WassimBlilita7/ULMA/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	result := sanitizer.Apply("  HELLO WORLD  ", sanitizer.Trim, sanitizer.ToLower, sanitizer.Truncate(5))
	assert.Equal(t, "hello", result)
	assert.Equal(t, "as is", sanitizer.Apply("as is"))
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.StripHTML)
	assert.Equal(t, "bold", clean("  <b>bold</b> "))
	assert.Equal(t, "again", clean("<i>again</i>"))
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "héll", sanitizer.MaxLength("héllo", 4))
	assert.Equal(t, "short", sanitizer.MaxLength("short", 10))
	assert.Equal(t, "", sanitizer.MaxLength("anything", 0))
}

func TestKeepChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123", sanitizer.KeepChars("a1b2c3", "0123456789"))
	assert.Equal(t, "", sanitizer.KeepChars("abc", ""))
	assert.Equal(t, "+33 (0)1", sanitizer.Apply("+33 (0)1☎", sanitizer.Keep("0123456789+() ")))
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"fits", "Le Petit Prince", 100, "Le Petit Prince"},
		{"exact length", "abc", 3, "abc"},
		{"cuts at last space", "Le Petit Prince", 10, "Le Petit..."},
		{"cuts hard without space", strings.Repeat("a", 12), 10, strings.Repeat("a", 10) + "..."},
		{"leading space is not a cut point", " abcdefghij", 5, " abcd..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.TruncateText(tt.input, tt.max))
		})
	}
}
