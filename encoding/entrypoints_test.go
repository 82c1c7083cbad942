package encoding_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"

	"github.com/illuscio-dev/bytejson-go/bintypes"
	"github.com/illuscio-dev/bytejson-go/encoding"
)

func TestFromReader(test *testing.T) {
	assert := assert.New(test)

	config := encoding.NewConfig().SetBytesHex()
	reader := bytes.NewBufferString(`{"Data":"0x010203"}`)

	loaded := Record{}
	err := encoding.FromReader(reader, config, &loaded)

	assert.Nil(err)
	assert.Equal(bintypes.New([]byte{1, 2, 3}), loaded.Data)
}

func TestToWriter(test *testing.T) {
	assert := assert.New(test)

	config := encoding.NewConfig().SetBytesHex().EnableHexPrefix()
	buffer := &bytes.Buffer{}

	err := encoding.ToWriter(
		buffer, Record{Data: bintypes.New([]byte{1, 2, 3})}, config,
	)

	assert.Nil(err)
	assert.Equal(`{"Data":"0x010203"}`, buffer.String())
}

func TestFromValueHandMadeTree(test *testing.T) {
	assert := assert.New(test)

	config := encoding.NewConfig().SetBytesHex()
	value := map[string]interface{}{"Data": "0x0a"}

	loaded := Record{}
	err := encoding.FromValue(value, config, &loaded)

	assert.Nil(err)
	assert.Equal(bintypes.New([]byte{10}), loaded.Data)
}

func TestToValueShape(test *testing.T) {
	assert := assert.New(test)

	record := Record{Data: bintypes.New([]byte{1, 2, 3})}

	hexConfig := encoding.NewConfig().SetBytesHex().EnableHexPrefix()
	value, err := encoding.ToValue(record, hexConfig)
	assert.Nil(err)

	tree := value.(map[string]interface{})
	assert.Equal("0x010203", tree["Data"])

	arrayConfig := encoding.NewConfig()
	value, err = encoding.ToValue(record, arrayConfig)
	assert.Nil(err)

	tree = value.(map[string]interface{})
	elements := tree["Data"].([]interface{})
	if assert.Len(elements, 3) {
		assert.EqualValues(1, elements[0])
		assert.EqualValues(2, elements[1])
		assert.EqualValues(3, elements[2])
	}
}

// ToValue followed by FromValue under the same configuration recovers the
// original typed value exactly.
func TestValueCycleIdempotence(test *testing.T) {
	type Mixed struct {
		First string
		Count int
		Data  bintypes.BinData
	}

	data := Mixed{
		First: "Harry",
		Count: 7,
		Data:  bintypes.New([]byte{1, 2, 3}),
	}

	configs := []encoding.Config{
		encoding.NewConfig(),
		encoding.NewConfig().SetBytesHex(),
		encoding.NewConfig().SetBytesHex().EnableHexPrefix(),
		encoding.NewConfig().SetBytesBase64(),
	}

	for _, config := range configs {
		value, err := encoding.ToValue(data, config)
		if err != nil {
			test.Error(err)
		}

		loaded := Mixed{}
		err = encoding.FromValue(value, config, &loaded)
		if err != nil {
			test.Error(err)
		}

		assert.Equal(test, data, loaded)
	}
}

func TestFromSliceRoundTrip(test *testing.T) {
	assert := assert.New(test)

	config := encoding.NewConfig().SetBytesBase64()
	record := Record{Data: bintypes.New([]byte{255, 254, 253})}

	encoded, err := encoding.ToBytes(record, config)
	assert.Nil(err)

	test.Log("DUMPED:", string(encoded))

	loaded := Record{}
	err = encoding.FromSlice(encoded, config, &loaded)
	assert.Nil(err)
	assert.Equal(record, loaded)
}
