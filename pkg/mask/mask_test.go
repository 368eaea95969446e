package mask_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WassimBlilita7/ULMA/pkg/mask"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         string
		start, end int
		char       rune
		want       string
	}{
		{"default shape", "password", 1, 0, '*', "p**********"},
		{"keeps both ends", "4111111111111111", 4, 4, '#', "4111##########1111"},
		{"too short", "ab", 1, 1, '*', "ab"},
		{"exactly visible", "abc", 2, 1, '*', "abc"},
		{"empty", "", 1, 0, '*', ""},
		{"multibyte", "élève", 1, 1, '•', "é••••••••••e"},
		{"negative bounds", "secret", -1, -2, '*', "**********"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mask.String(tt.in, tt.start, tt.end, tt.char))
		})
	}
}

func TestStringFixedWidth(t *testing.T) {
	t.Parallel()

	got := mask.Default(strings.Repeat("x", 100))
	assert.Equal(t, "x"+strings.Repeat("*", mask.MaskWidth), got)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "p**********", mask.Default("password"))
	assert.Equal(t, "a", mask.Default("a"))
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"john.doe@example.com", "j***@example.com"},
		{"a@b.com", "a***@b.com"},
		{"ébène@univ.fr", "é***@univ.fr"},
		{"@example.com", "@example.com"},
		{"john@", "john@"},
		{"a@b@c", "a***@b"},
		{"jean@univ.fr@evil.com", "j***@univ.fr"},
		{"a@@c", "a@@c"},
		{"not-an-email", "not-an-email"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mask.Email(tt.in), tt.in)
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0612345678", "061******678"},
		{"+33612345678", "+33******678"},
		{"123456", "123456"},
		{"1234567", "123******567"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mask.Phone(tt.in), tt.in)
	}
}
