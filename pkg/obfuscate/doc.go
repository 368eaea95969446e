// Package obfuscate provides reversible, NON-cryptographic encodings used to
// keep values stored on the client from being readable at a glance, plus a
// change-detection hash and random identifier helpers.
//
// Nothing in this package provides confidentiality. The XOR key is fixed and
// public, there is no salt and no authentication: anyone holding a Blob can
// recover the plaintext. Use it to deter casual inspection only. For real
// encryption use the secrets package (AES-GCM).
//
// # Encodings
//
//   - EncodeBase64 / DecodeBase64 – Base64 over UTF-8, round-tripping any
//     Unicode text. EncodeValue JSON-encodes non-string values first.
//   - XOR – XORs UTF-16 code units with a repeating key and Base64-encodes the
//     result into a Blob. The output is byte-compatible with the browser
//     implementation (btoa(unescape(encodeURIComponent(...)))) whenever the
//     browser can produce it.
//
// # Helpers
//
//   - Hash – 32-bit rolling hash (h*31 + c) rendered in base 36. Deterministic
//     and collision-prone; never use it for security decisions.
//   - GenerateID – UUID v4 string.
//   - GenerateSecureToken – lowercase hex token from crypto/rand, falling back
//     to math/rand/v2 if the system source fails.
//
// # Usage
//
//	blob := obfuscate.Cipher("session-token")
//	plain, err := obfuscate.Decipher(blob)
//
//	tok := obfuscate.GenerateSecureToken(32) // 64 hex characters
package obfuscate
