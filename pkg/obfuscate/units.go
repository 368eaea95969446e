package obfuscate

import (
	"unicode/utf16"
	"unicode/utf8"
)

// encodeUnits serialises UTF-16 code units as UTF-8. Valid surrogate pairs
// become one 4-byte sequence; lone surrogates use the generalised 3-byte
// form (WTF-8) so that every unit sequence survives a round trip.
func encodeUnits(units []uint16) []byte {
	buf := make([]byte, 0, len(units)*2)
	for i := 0; i < len(units); i++ {
		c := rune(units[i])
		if !utf16.IsSurrogate(c) {
			buf = utf8.AppendRune(buf, c)
			continue
		}
		if c < 0xDC00 && i+1 < len(units) {
			if r := utf16.DecodeRune(c, rune(units[i+1])); r != utf8.RuneError {
				buf = utf8.AppendRune(buf, r)
				i++
				continue
			}
		}
		buf = append(buf, byte(0xE0|c>>12), byte(0x80|(c>>6)&0x3F), byte(0x80|c&0x3F))
	}
	return buf
}

// decodeUnits is the inverse of encodeUnits.
func decodeUnits(p []byte) ([]uint16, error) {
	units := make([]uint16, 0, len(p))
	for i := 0; i < len(p); {
		if isEncodedSurrogate(p[i:]) {
			c := uint16(p[i]&0x0F)<<12 | uint16(p[i+1]&0x3F)<<6 | uint16(p[i+2]&0x3F)
			units = append(units, c)
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, ErrInvalidText
		}
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units, nil
}

func isEncodedSurrogate(p []byte) bool {
	return len(p) >= 3 && p[0] == 0xED && p[1] >= 0xA0 && p[1] <= 0xBF && p[2]&0xC0 == 0x80
}

func stringUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func unitsString(units []uint16) string {
	return string(utf16.Decode(units))
}
