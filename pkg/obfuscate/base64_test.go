package obfuscate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WassimBlilita7/ULMA/pkg/obfuscate"
)

func TestEncodeBase64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "aMOpbGxv", obfuscate.EncodeBase64("héllo"))
	assert.Equal(t, "", obfuscate.EncodeBase64(""))
}

func TestDecodeBase64RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "hello", "héllo wörld", "日本語", "emoji 😀 mix", "<script>&</script>"}
	for _, in := range inputs {
		out, err := obfuscate.DecodeBase64(obfuscate.EncodeBase64(in))
		require.NoError(t, err, in)
		assert.Equal(t, in, out)
	}
}

func TestDecodeBase64Errors(t *testing.T) {
	t.Parallel()

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := obfuscate.DecodeBase64("not base64!!")
		require.ErrorIs(t, err, obfuscate.ErrInvalidEncoding)
	})

	t.Run("invalid utf8", func(t *testing.T) {
		t.Parallel()
		_, err := obfuscate.DecodeBase64("/w==") // 0xFF
		require.ErrorIs(t, err, obfuscate.ErrInvalidText)
	})
}

func TestEncodeValue(t *testing.T) {
	t.Parallel()

	got, err := obfuscate.EncodeValue(map[string]string{"key": "<value>"})
	require.NoError(t, err)

	decoded, err := obfuscate.DecodeBase64(got)
	require.NoError(t, err)
	assert.Equal(t, `{"key":"<value>"}`, decoded)

	got, err = obfuscate.EncodeValue("plain")
	require.NoError(t, err)
	assert.Equal(t, obfuscate.EncodeBase64("plain"), got)

	_, err = obfuscate.EncodeValue(func() {})
	require.Error(t, err)
}
