// Package mask hides parts of sensitive values for display. Masking is
// one-way and purely cosmetic: the original value must still be protected
// wherever it is stored.
//
//	mask.Default("password")               // "p**********"
//	mask.Email("john.doe@example.com")     // "j***@example.com"
//	mask.Phone("0612345678")               // "061******678"
//
// Lengths are counted in characters, not bytes.
package mask
