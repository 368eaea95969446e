package demo

import (
	"golang.org/x/text/language"

	"github.com/WassimBlilita7/ULMA/pkg/config"
	"github.com/WassimBlilita7/ULMA/pkg/validator"
)

// Backend names accepted in STORE_BACKEND.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Codec names accepted in STORE_CODEC.
const (
	CodecXOR    = "xor"
	CodecSealed = "sealed"
)

type Config struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	Name           string `env:"APP_NAME" envDefault:"ulma"`
	Lang           string `env:"APP_LANG" envDefault:"fr"`
	StoreBackend   string `env:"STORE_BACKEND" envDefault:"memory"`
	StoreFilePath  string `env:"STORE_FILE_PATH" envDefault:".ulma/store.json"`
	StoreKeyPrefix string `env:"STORE_KEY_PREFIX" envDefault:"ulma:"`
	StoreCodec     string `env:"STORE_CODEC" envDefault:"xor"`
	ObfuscationKey string `env:"OBFUSCATION_KEY" envDefault:"ULMA_LIBRARY_KEY"`
	SecretKey      string `env:"STORE_SECRET_KEY"` // hex or base64, 32 bytes; required for the sealed codec outside development
}

// LoadConfig reads Config from the environment and ./.env.
func LoadConfig() (Config, error) {
	var cfg Config
	err := config.Load(&cfg)
	return cfg, err
}

// Language returns the tag for Lang, falling back to the validator default
// when it is empty or malformed.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return validator.DefaultLanguage
	}
	return tag
}
