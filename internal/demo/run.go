package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/WassimBlilita7/ULMA/pkg/login"
	"github.com/WassimBlilita7/ULMA/pkg/mask"
	"github.com/WassimBlilita7/ULMA/pkg/obfuscate"
	"github.com/WassimBlilita7/ULMA/pkg/sanitizer"
	"github.com/WassimBlilita7/ULMA/pkg/securestore"
	"github.com/WassimBlilita7/ULMA/pkg/validator"
)

// Deps holds what Run exercises.
type Deps struct {
	Store   *securestore.Store
	Backend securestore.Backend
	Login   *login.Service
	Lang    language.Tag
}

type book struct {
	ID     int
	Title  string
	Author string
}

var catalog = []book{
	{1, "Le Petit Prince", "Antoine de Saint-Exupéry"},
	{2, "L’Étranger", "Albert Camus"},
	{3, "1984", "George Orwell"},
	{4, `<img src=x onerror="alert(1)">Les Misérables`, "Victor Hugo"},
}

// Run walks through every helper and prints the results to w.
func Run(ctx context.Context, w io.Writer, d Deps) error {
	p := &printer{w: w}

	p.section("HTML escaping")
	xss := `<script>alert("XSS")</script>`
	p.kv("input", xss)
	p.kv("escaped", sanitizer.EscapeHTML(xss))
	p.kv("stripped", sanitizer.StripHTML(xss))

	p.section("Sanitizers")
	p.kv("username", sanitizer.SanitizeUsername("  jean.dupont<script>!  "))
	p.kv("email", sanitizer.SanitizeEmail(` "Jean.Dupont"@Univ.FR `))
	p.kv("phone", sanitizer.SanitizePhone("+33 (0)6 12-34-56-78 ext#9"))
	p.kv("url", sanitizer.SanitizeURL("HTTPS://Bibliotheque.Univ.fr"))
	p.kv("javascript url", fmt.Sprintf("%q", sanitizer.SanitizeURL("javascript:alert(1)")))
	for _, b := range catalog {
		p.kv(fmt.Sprintf("book %d", b.ID), sanitizer.SanitizeBookTitle(b.Title))
	}
	p.kv("summary", sanitizer.TruncateText("Un aviateur tombé en panne dans le désert rencontre un petit prince venu d'une autre planète.", 40))

	p.section("Validation")
	for _, c := range []struct {
		field string
		res   validator.Result
	}{
		{"email", validator.ValidateEmail("lecteur@univ")},
		{"password", validator.ValidatePassword("motdepasse")},
		{"username", validator.ValidateUsername("ab")},
		{"phone", validator.ValidatePhone("+33 6 12 34 56 78")},
		{"birth date", validator.ValidateBirthDate("2015-06-01")},
		{"id", validator.ValidateID("42abc")},
	} {
		p.kv(c.field, describe(c.res, d.Lang))
	}

	p.section("Book form")
	for _, b := range catalog[:2] {
		res := validator.ValidateForm(map[string]any{
			"id":     b.ID,
			"title":  b.Title,
			"author": b.Author,
		}, bookRules)
		p.kv(b.Title, fmt.Sprintf("valid=%t", res.Valid))
	}
	res := validator.ValidateForm(map[string]any{"id": -1, "title": "   ", "author": "X"}, bookRules)
	for field, msg := range res.Localize(d.Lang) {
		p.kv("invalid "+field, msg)
	}

	p.section("Obfuscation (not encryption)")
	secret := "Mot de passe très secret"
	blob := obfuscate.Cipher(secret)
	plain, err := obfuscate.Decipher(blob)
	if err != nil {
		return err
	}
	p.kv("base64", obfuscate.EncodeBase64(secret))
	p.kv("xor", string(blob))
	p.kv("restored", plain)
	p.kv("hash", obfuscate.Hash(secret))
	p.kv("id", obfuscate.GenerateID())
	p.kv("token", obfuscate.GenerateSecureToken(16))

	p.section("Masking")
	p.kv("email", mask.Email("jean.dupont@univ.fr"))
	p.kv("phone", mask.Phone("0612345678"))
	p.kv("card", mask.String("4970101234567890", 4, 4, '•'))
	p.kv("password", mask.Default("Lecture2026"))

	p.section("Secure storage")
	if err := storageRoundTrip(ctx, p, d); err != nil {
		return err
	}

	p.section("Login")
	if err := loginFlow(ctx, p, d); err != nil {
		return err
	}

	return p.err
}

var bookRules = map[string]validator.Func{
	"id":     validator.ID,
	"title":  validator.String(validator.ValidateBookTitle),
	"author": validator.String(validator.ValidateAuthorName),
}

func storageRoundTrip(ctx context.Context, p *printer, d Deps) error {
	const key = "testKey"
	value := map[string]any{"book": catalog[0].Title, "borrowed": true}

	if err := d.Store.Set(ctx, key, value); err != nil {
		return err
	}
	if d.Backend != nil {
		if raw, ok, err := d.Backend.GetItem(ctx, key); err == nil && ok {
			p.kv("raw", raw)
		}
	}

	got, err := d.Store.Get(ctx, key)
	if err != nil {
		return err
	}
	js, _ := obfuscate.Stringify(got)
	p.kv("value", js)

	if err := d.Store.Remove(ctx, key); err != nil {
		return err
	}
	_, err = d.Store.Get(ctx, key)
	p.kv("after remove", fmt.Sprintf("not found=%t", errors.Is(err, securestore.ErrNotFound)))
	return nil
}

func loginFlow(ctx context.Context, p *printer, d Deps) error {
	attempts := []login.Credentials{
		{Email: "pas-un-email", Password: "x"},
		{Email: "lecteur@univ.fr", Password: "Mauvais123"},
		{Email: " Lecteur@Univ.FR ", Password: "Lecture2026"},
	}

	for _, creds := range attempts {
		user, err := d.Login.Login(ctx, creds)
		var locked *login.LockoutError
		switch {
		case err == nil:
			p.kv(creds.Email, fmt.Sprintf("ok id=%s role=%s", user.ID, user.Role))
		case validator.IsValidationError(err):
			p.kv(creds.Email, "invalid: "+localizeErrors(err, d.Lang))
		case errors.As(err, &locked):
			p.kv(creds.Email, fmt.Sprintf("locked for %d minute(s)", locked.Minutes()))
		case errors.Is(err, login.ErrInvalidCredentials):
			p.kv(creds.Email, fmt.Sprintf("rejected, %d attempt(s) left", d.Login.Guard().Remaining()))
		default:
			return err
		}
	}

	user, err := d.Login.CurrentUser(ctx)
	if err != nil {
		return err
	}
	p.kv("current user", mask.Email(user.Email))

	tok, err := d.Login.Token(ctx)
	if err != nil {
		return err
	}
	p.kv("token", mask.String(tok, 4, 4, '*'))

	if err := d.Login.Logout(ctx); err != nil {
		return err
	}
	_, err = d.Login.CurrentUser(ctx)
	p.kv("after logout", fmt.Sprintf("logged in=%t", !errors.Is(err, login.ErrNotLoggedIn)))
	return nil
}

func describe(r validator.Result, lang language.Tag) string {
	if r.Valid {
		return "ok"
	}
	return r.Localize(lang)
}

func localizeErrors(err error, lang language.Tag) string {
	errs := validator.ExtractValidationErrors(err)
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+": "+validator.Translate(lang, e.TranslationKey, e.TranslationArgs...))
	}
	return strings.Join(parts, "; ")
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) section(title string) {
	p.printf("\n== %s ==\n", title)
}

func (p *printer) kv(k, v string) {
	p.printf("  %-16s %s\n", k+":", v)
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
