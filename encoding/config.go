package encoding

import (
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/illuscio-dev/bytejson-go/bytemode"
)

/*
Config describes how binary blob fields should be represented on the json
wire. Config is a small value object: every mutator returns an updated copy
with exactly one field changed, so settings can be built up through chaining:

	config := encoding.NewConfig().SetBytesHex().EnableHexPrefix()

A Config handed to an engine or entry point is never mutated afterwards, which
makes a single Config safe to share across any number of concurrent calls.

All field combinations are valid. Enabling the hex prefix under array or
base64 mode is accepted and simply has no effect on output, since the prefix
only applies to hex strings.
*/
type Config struct {
	// Wire representation for binary blob fields.
	byteMode bytemode.Mode
	// Whether hex strings are emitted with a "0x" prefix.
	hexPrefix bool
}

// Returns a Config with the default settings: array byte mode, hex prefix
// disabled.
func NewConfig() Config {
	return Config{byteMode: bytemode.ARRAY}
}

// Returns a copy of the config with binary blobs represented as json arrays
// of 0-255 numbers.
func (config Config) SetBytesArray() Config {
	config.byteMode = bytemode.ARRAY
	return config
}

// Returns a copy of the config with binary blobs represented as lowercase
// hex strings.
func (config Config) SetBytesHex() Config {
	config.byteMode = bytemode.HEX
	return config
}

// Returns a copy of the config with binary blobs represented as standard
// base64 strings with padding.
func (config Config) SetBytesBase64() Config {
	config.byteMode = bytemode.BASE64
	return config
}

// Returns a copy of the config with hex output prefixed by "0x". Decoding
// accepts the prefix whether or not it is enabled here.
func (config Config) EnableHexPrefix() Config {
	config.hexPrefix = true
	return config
}

// Returns a copy of the config with the "0x" hex output prefix turned off.
func (config Config) DisableHexPrefix() Config {
	config.hexPrefix = false
	return config
}

// Wire representation for binary blob fields.
func (config Config) ByteMode() bytemode.Mode {
	return config.byteMode
}

// Whether hex strings are emitted with a "0x" prefix.
func (config Config) HexPrefixEnabled() bool {
	return config.hexPrefix
}

// Yaml layout for ConfigFromYAML.
type configYAML struct {
	Bytes     string `yaml:"bytes"`
	HexPrefix bool   `yaml:"hex_prefix"`
}

/*
ConfigFromYAML loads a Config from a yaml document of the form:

	bytes: hex
	hex_prefix: true

Omitted fields keep their defaults. An unrecognized byte mode is an error
rather than a silent fallback.
*/
func ConfigFromYAML(source []byte) (Config, error) {
	loaded := configYAML{}
	if err := yaml.Unmarshal(source, &loaded); err != nil {
		return Config{}, xerrors.Errorf("error parsing config yaml: %w", err)
	}

	config := NewConfig()

	if loaded.Bytes != "" {
		switch bytemode.FromString(loaded.Bytes) {
		case bytemode.ARRAY:
			config = config.SetBytesArray()
		case bytemode.HEX:
			config = config.SetBytesHex()
		case bytemode.BASE64:
			config = config.SetBytesBase64()
		default:
			return Config{}, xerrors.New(
				"unknown byte mode " + loaded.Bytes,
			)
		}
	}

	if loaded.HexPrefix {
		config = config.EnableHexPrefix()
	}

	return config, nil
}
