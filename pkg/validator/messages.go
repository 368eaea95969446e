package validator

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Catalog keys reported in Result.Key.
const (
	KeyMinLength = "validation.min_length"
	KeyMaxLength = "validation.max_length"

	KeyEmailRequired = "email.required"
	KeyEmailFormat   = "email.format"
	KeyEmailTooLong  = "email.too_long"

	KeyPasswordRequired  = "password.required"
	KeyPasswordLowercase = "password.lowercase"
	KeyPasswordUppercase = "password.uppercase"
	KeyPasswordDigit     = "password.digit"

	KeyUsernameRequired = "username.required"
	KeyUsernameCharset  = "username.charset"

	KeyBookTitleRequired = "book_title.required"
	KeyBookTitleEmpty    = "book_title.empty"

	KeyAuthorRequired = "author.required"

	KeyPhoneRequired = "phone.required"
	KeyPhoneFormat   = "phone.format"

	KeyBirthDateRequired    = "birth_date.required"
	KeyBirthDateInvalid     = "birth_date.invalid"
	KeyBirthDateUnderage    = "birth_date.underage"
	KeyBirthDateImplausible = "birth_date.implausible"

	KeyIDInvalid = "id.invalid"

	KeyURLRequired = "url.required"
	KeyURLScheme   = "url.scheme"
	KeyURLFormat   = "url.format"
)

var translations = map[language.Tag]map[string]string{
	language.French: {
		KeyMinLength:            "Minimum %d caractères",
		KeyMaxLength:            "Maximum %d caractères",
		KeyEmailRequired:        "Email requis",
		KeyEmailFormat:          "Format email invalide",
		KeyEmailTooLong:         "Email trop long (max %d caractères)",
		KeyPasswordRequired:     "Mot de passe requis",
		KeyPasswordLowercase:    "Doit contenir au moins une minuscule",
		KeyPasswordUppercase:    "Doit contenir au moins une majuscule",
		KeyPasswordDigit:        "Doit contenir au moins un chiffre",
		KeyUsernameRequired:     "Nom d'utilisateur requis",
		KeyUsernameCharset:      "Uniquement lettres, chiffres, _ et -",
		KeyBookTitleRequired:    "Titre requis",
		KeyBookTitleEmpty:       "Le titre ne peut pas être vide",
		KeyAuthorRequired:       "Nom d'auteur requis",
		KeyPhoneRequired:        "Numéro de téléphone requis",
		KeyPhoneFormat:          "Format de téléphone invalide",
		KeyBirthDateRequired:    "Date de naissance requise",
		KeyBirthDateInvalid:     "Date invalide",
		KeyBirthDateUnderage:    "Vous devez avoir au moins %d ans",
		KeyBirthDateImplausible: "Date de naissance invalide",
		KeyIDInvalid:            "ID invalide",
		KeyURLRequired:          "URL requise",
		KeyURLScheme:            "Protocole HTTP/HTTPS requis",
		KeyURLFormat:            "Format URL invalide",
	},
	language.English: {
		KeyMinLength:            "Minimum %d characters",
		KeyMaxLength:            "Maximum %d characters",
		KeyEmailRequired:        "Email is required",
		KeyEmailFormat:          "Invalid email format",
		KeyEmailTooLong:         "Email is too long (max %d characters)",
		KeyPasswordRequired:     "Password is required",
		KeyPasswordLowercase:    "Must contain at least one lowercase letter",
		KeyPasswordUppercase:    "Must contain at least one uppercase letter",
		KeyPasswordDigit:        "Must contain at least one digit",
		KeyUsernameRequired:     "Username is required",
		KeyUsernameCharset:      "Only letters, digits, _ and -",
		KeyBookTitleRequired:    "Title is required",
		KeyBookTitleEmpty:       "Title cannot be blank",
		KeyAuthorRequired:       "Author name is required",
		KeyPhoneRequired:        "Phone number is required",
		KeyPhoneFormat:          "Invalid phone number format",
		KeyBirthDateRequired:    "Birth date is required",
		KeyBirthDateInvalid:     "Invalid date",
		KeyBirthDateUnderage:    "You must be at least %d years old",
		KeyBirthDateImplausible: "Implausible birth date",
		KeyIDInvalid:            "Invalid ID",
		KeyURLRequired:          "URL is required",
		KeyURLScheme:            "HTTP/HTTPS scheme required",
		KeyURLFormat:            "Invalid URL format",
	},
}

var messageCatalog = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Errorf("validator: register %s message %q: %w", tag, key, err))
			}
		}
	}
	return b
}

// DefaultLanguage is the language of Result.Error.
var DefaultLanguage = language.French

// Languages lists the languages the message catalog covers.
func Languages() []language.Tag {
	return messageCatalog.Languages()
}

// Translate renders the catalog message for key in lang, falling back to
// French for unknown languages and to the key itself for unknown keys.
func Translate(lang language.Tag, key string, args ...any) string {
	return message.NewPrinter(lang, message.Catalog(messageCatalog)).Sprintf(key, args...)
}
