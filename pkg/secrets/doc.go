// Package secrets seals values with AES-256-GCM under a key derived from a
// master key and a scope label.
//
// It is the real-encryption counterpart of the obfuscate package: sealed
// values are confidential and tamper-evident as long as the master key stays
// secret. The scope (for example a store namespace) is mixed into the key with
// HKDF-SHA-256, so values sealed under one scope never open under another.
//
// Sealed payloads are nonce || ciphertext || tag; the string helpers wrap them
// in standard Base64.
//
// # Usage
//
//	key, _ := secrets.GenerateKey()
//	s, err := secrets.New(key, "ulma:store")
//	if err != nil {
//		// handle error
//	}
//
//	ct, _ := s.SealString("session-token")
//	plain, err := s.OpenString(ct)
//
// All failures wrap a sentinel such as ErrInvalidKey or ErrDecryptionFailed;
// match them with errors.Is.
package secrets
