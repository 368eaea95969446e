// Package ulma is the input-safety toolkit of the ULMA university library
// front-end. The root package only documents the module; functionality lives
// in the packages under pkg/.
//
// Packages:
//
//   - sanitizer: HTML escaping and stripping, per-field sanitisers
//     (username, email, book title, phone, URL) and Apply/Compose pipelines.
//   - validator: format validators returning Result values with French and
//     English messages, and ValidateForm for whole forms.
//   - obfuscate: Base64, XOR obfuscation, a change-detection hash, UUID and
//     random token generation. None of it is encryption.
//   - secrets: AES-256-GCM sealing under HKDF-derived keys.
//   - securestore: key-value store wrapper that never writes plaintext, with
//     memory, file and Redis backends and XOR or sealed codecs.
//   - redis: Redis connection helpers and the Redis store backend.
//   - mask: display masking for strings, emails and phone numbers.
//   - login: login flow with brute-force lockout and session persistence.
//   - logger, config, environment: structured logging, env configuration and
//     environment propagation.
//
// Quick start:
//
//	title := sanitizer.SanitizeBookTitle(input)
//	if res := validator.ValidateBookTitle(title); !res.Valid {
//		return res.Err("title")
//	}
//
//	store := securestore.New(securestore.NewMemoryBackend())
//	_ = store.Set(ctx, "authToken", token)
//
// The securitydemo command (cmd/securitydemo) exercises every package.
package ulma
