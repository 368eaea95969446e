package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WassimBlilita7/ULMA/pkg/validator"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		key   string
	}{
		{"valid", "john.doe@example.com", ""},
		{"valid subdomain", "etudiant@mail.ulma.edu", ""},
		{"empty", "", validator.KeyEmailRequired},
		{"missing at", "bad", validator.KeyEmailFormat},
		{"missing tld", "user@domain", validator.KeyEmailFormat},
		{"contains space", "user name@domain.com", validator.KeyEmailFormat},
		{"double at", "a@b@c.com", validator.KeyEmailFormat},
		{"no-break space", "a\u00a0b@c.de", validator.KeyEmailFormat},
		{"vertical tab", "a@c\v.de", validator.KeyEmailFormat},
		{"line separator", "a@c.d\u2028e", validator.KeyEmailFormat},
		{"byte order mark", "\ufeffa@c.de", validator.KeyEmailFormat},
		{"too long", strings.Repeat("a", 250) + "@example.com", validator.KeyEmailTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.ValidateEmail(tt.input)
			if tt.key == "" {
				assert.True(t, res.Valid)
				assert.Empty(t, res.Error)
				return
			}
			assert.False(t, res.Valid)
			assert.Equal(t, tt.key, res.Key)
			assert.NotEmpty(t, res.Error)
		})
	}

	assert.Equal(t, "Email trop long (max 255 caractères)", validator.ValidateEmail(strings.Repeat("a", 250)+"@example.com").Error)
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		error string
	}{
		{"valid", "Password123", ""},
		{"empty", "", "Mot de passe requis"},
		{"too short", "Pa1", "Minimum 8 caractères"},
		{"too long", "Aa1" + strings.Repeat("x", 126), "Maximum 128 caractères"},
		{"no lowercase", "PASSWORD123", "Doit contenir au moins une minuscule"},
		{"no uppercase", "password123", "Doit contenir au moins une majuscule"},
		{"no digit", "Passwordabc", "Doit contenir au moins un chiffre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.ValidatePassword(tt.input)
			assert.Equal(t, tt.error == "", res.Valid)
			assert.Equal(t, tt.error, res.Error)
		})
	}

	assert.Contains(t, validator.ValidatePassword("password123").Error, "majuscule")
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		key   string
	}{
		{"valid", "jean_luc-42", ""},
		{"valid after trim", "  abc  ", ""},
		{"empty", "", validator.KeyUsernameRequired},
		{"blank", "   ", validator.KeyMinLength},
		{"too short", "ab", validator.KeyMinLength},
		{"too long", strings.Repeat("a", 51), validator.KeyMaxLength},
		{"bad charset", "user@name", validator.KeyUsernameCharset},
		{"inner space", "user name", validator.KeyUsernameCharset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.ValidateUsername(tt.input)
			assert.Equal(t, tt.key == "", res.Valid)
			assert.Equal(t, tt.key, res.Key)
		})
	}
}

func TestValidateBookTitle(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidateBookTitle("1984").Valid)
	assert.True(t, validator.ValidateBookTitle("L’Étranger").Valid)
	assert.Equal(t, "Titre requis", validator.ValidateBookTitle("").Error)
	assert.Equal(t, "Le titre ne peut pas être vide", validator.ValidateBookTitle("   ").Error)
	assert.Equal(t, "Maximum 200 caractères", validator.ValidateBookTitle(strings.Repeat("é", 201)).Error)
	assert.True(t, validator.ValidateBookTitle(strings.Repeat("é", 200)).Valid)
}

func TestValidateAuthorName(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidateAuthorName("Albert Camus").Valid)
	assert.Equal(t, validator.KeyAuthorRequired, validator.ValidateAuthorName("").Key)
	assert.Equal(t, "Minimum 2 caractères", validator.ValidateAuthorName(" A ").Error)
	assert.Equal(t, "Maximum 100 caractères", validator.ValidateAuthorName(strings.Repeat("b", 101)).Error)
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"+33123456789", "0123456789", "+1 (234) 567-8900", "+33\v123456789", "+33\u00a0123\u00a0456\u00a0789"} {
		assert.True(t, validator.ValidatePhone(valid).Valid, valid)
	}

	assert.Equal(t, validator.KeyPhoneRequired, validator.ValidatePhone("").Key)
	assert.Equal(t, validator.KeyPhoneFormat, validator.ValidatePhone("1234567").Key)
	assert.Equal(t, validator.KeyPhoneFormat, validator.ValidatePhone("01.23.45.67.89").Key)
	assert.Equal(t, validator.KeyPhoneFormat, validator.ValidatePhone("123456789012345678901").Key)
	assert.Equal(t, validator.KeyPhoneFormat, validator.ValidatePhone("12345678+").Key)
}

func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		key   string
	}{
		{"http", "http://example.com", ""},
		{"https with path", "https://ulma.edu/books?id=3", ""},
		{"upper-case scheme", "HTTPS://ulma.edu", ""},
		{"empty", "", validator.KeyURLRequired},
		{"relative", "/books", validator.KeyURLFormat},
		{"garbage", "not a url", validator.KeyURLFormat},
		{"javascript", "javascript:alert(1)", validator.KeyURLScheme},
		{"ftp", "ftp://files.ulma.edu", validator.KeyURLScheme},
		{"missing host", "http://", validator.KeyURLFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validator.ValidateURL(tt.input)
			assert.Equal(t, tt.key == "", res.Valid)
			assert.Equal(t, tt.key, res.Key)
		})
	}
}
