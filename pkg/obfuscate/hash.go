package obfuscate

import (
	"fmt"
	"strconv"
)

// Hash returns a 32-bit rolling hash (h = h*31 + c over UTF-16 code units)
// rendered in signed base 36. It detects changes; it does not resist
// collisions or preimages.
func Hash(s string) string {
	var h int32
	for _, c := range stringUnits(s) {
		h = h<<5 - h + int32(c)
	}
	return strconv.FormatInt(int64(h), 36)
}

// HashValue hashes strings directly and other values through their JSON form.
func HashValue(v any) string {
	if s, ok := v.(string); ok {
		return Hash(s)
	}
	s, err := Stringify(v)
	if err != nil {
		return Hash(fmt.Sprint(v))
	}
	return Hash(s)
}
