package encoding_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"github.com/illuscio-dev/bytejson-go/bytemode"
	"github.com/illuscio-dev/bytejson-go/encoding"
)

func TestConfigDefaults(test *testing.T) {
	assert := assert.New(test)

	config := encoding.NewConfig()

	assert.Equal(bytemode.ARRAY, config.ByteMode())
	assert.False(config.HexPrefixEnabled())
}

func TestConfigChaining(test *testing.T) {
	assert := assert.New(test)

	config := encoding.NewConfig().SetBytesHex().EnableHexPrefix()

	assert.Equal(bytemode.HEX, config.ByteMode())
	assert.True(config.HexPrefixEnabled())
}

// Mutators return copies; the original config is never touched.
func TestConfigImmutable(test *testing.T) {
	assert := assert.New(test)

	base := encoding.NewConfig()
	updated := base.SetBytesHex().EnableHexPrefix()

	assert.Equal(bytemode.ARRAY, base.ByteMode())
	assert.False(base.HexPrefixEnabled())
	assert.Equal(bytemode.HEX, updated.ByteMode())
}

func TestConfigEachMutator(test *testing.T) {
	assert := assert.New(test)

	config := encoding.NewConfig().SetBytesBase64()
	assert.Equal(bytemode.BASE64, config.ByteMode())

	config = config.SetBytesHex()
	assert.Equal(bytemode.HEX, config.ByteMode())

	config = config.SetBytesArray()
	assert.Equal(bytemode.ARRAY, config.ByteMode())

	config = config.EnableHexPrefix()
	assert.True(config.HexPrefixEnabled())

	config = config.DisableHexPrefix()
	assert.False(config.HexPrefixEnabled())
}

// All combinations are valid -- the prefix toggle under base64 mode is
// accepted and simply does nothing.
func TestConfigPrefixWithBase64(test *testing.T) {
	assert := assert.New(test)

	config := encoding.NewConfig().SetBytesBase64().EnableHexPrefix()

	assert.Equal(bytemode.BASE64, config.ByteMode())
	assert.True(config.HexPrefixEnabled())
}

func TestConfigFromYAML(test *testing.T) {
	assert := assert.New(test)

	config, err := encoding.ConfigFromYAML([]byte(
		"bytes: hex\nhex_prefix: true\n",
	))

	assert.Nil(err)
	assert.Equal(bytemode.HEX, config.ByteMode())
	assert.True(config.HexPrefixEnabled())
}

func TestConfigFromYAMLDefaults(test *testing.T) {
	assert := assert.New(test)

	config, err := encoding.ConfigFromYAML([]byte(""))

	assert.Nil(err)
	assert.Equal(bytemode.ARRAY, config.ByteMode())
	assert.False(config.HexPrefixEnabled())
}

func TestConfigFromYAMLBase64(test *testing.T) {
	assert := assert.New(test)

	config, err := encoding.ConfigFromYAML([]byte("bytes: base64\n"))

	assert.Nil(err)
	assert.Equal(bytemode.BASE64, config.ByteMode())
}

func TestConfigFromYAMLUnknownMode(test *testing.T) {
	_, err := encoding.ConfigFromYAML([]byte("bytes: widget\n"))

	assert.EqualError(test, err, "unknown byte mode widget")
}

func TestConfigFromYAMLMalformed(test *testing.T) {
	_, err := encoding.ConfigFromYAML([]byte("bytes: [unclosed\n"))

	if err == nil {
		test.Fatal("expected yaml parse error")
	}
	assert.Contains(test, err.Error(), "error parsing config yaml")
}
