// Package securestore persists values in a key-value backend after encoding
// them with a Codec, so that the raw backend never holds plaintext.
//
// The Backend contract mirrors browser localStorage: string keys, string
// values, and a missing key that is reported, not treated as an error.
// Shipped backends are MemoryBackend, FileBackend (a JSON file that survives
// restarts) and redis.Storage in the sibling redis package.
//
// Two codecs are available:
//
//   - XORCodec (default) obfuscates with the public XOR key from package
//     obfuscate. It deters casual inspection and nothing more.
//   - SealedCodec encrypts with AES-GCM via package secrets. Use it whenever
//     the stored value must actually stay confidential.
//
// # Usage
//
//	store := securestore.New(securestore.NewMemoryBackend(),
//		securestore.WithLogger(log),
//	)
//	_ = store.Set(ctx, "user", User{ID: 1, Email: "a@b.fr"})
//
//	var u User
//	if err := store.GetInto(ctx, "user", &u); errors.Is(err, securestore.ErrNotFound) {
//		// not logged in
//	}
//
// Strings are stored as-is and every other value as JSON. Get returns the
// JSON-decoded value when the plaintext parses as JSON and the raw string
// otherwise.
//
// # Errors
//
// Failures are logged and returned wrapped in ErrNotFound, ErrCorrupted,
// ErrEncode, ErrDecode or ErrBackend.
package securestore
