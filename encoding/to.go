package encoding

import (
	"bytes"
	"golang.org/x/xerrors"
	"io"
	"reflect"
)
import "github.com/ugorji/go/codec"

/*
ToString serializes a value to a json string with the given configuration.

	type Record struct {
		Data bintypes.BinData
	}

	config := encoding.NewConfig().SetBytesHex().EnableHexPrefix()
	record := Record{Data: bintypes.New([]byte{1, 2, 3})}
	encoded, err := encoding.ToString(record, config)
	// {"Data":"0x010203"}
*/
func ToString(content interface{}, config Config) (string, error) {
	encoded, err := ToBytes(content, config)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// ToBytes serializes a value to a json byte slice with the given
// configuration.
func ToBytes(content interface{}, config Config) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := ToWriter(buffer, content, config); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// ToWriter serializes a value to a json writer with the given configuration.
func ToWriter(writer io.Writer, content interface{}, config Config) error {
	engine, err := NewEngine(config)
	if err != nil {
		return err
	}
	return engine.Encode(content, writer)
}

// ToValue serializes a value with the given configuration, then parses the
// result back into a generic json tree (map[string]interface{} /
// []interface{} / scalars). Binary fields in the tree already carry their
// configured wire shape, so the tree round-trips through FromValue under the
// same configuration.
func ToValue(content interface{}, config Config) (interface{}, error) {
	encoded, err := ToBytes(content, config)
	if err != nil {
		return nil, err
	}

	plainHandle := &codec.JsonHandle{}
	plainHandle.MapType = reflect.TypeOf(map[string]interface{}(nil))

	var value interface{}
	valueDecoder := codec.NewDecoderBytes(encoded, plainHandle)
	if err := valueDecoder.Decode(&value); err != nil {
		return nil, xerrors.Errorf("error parsing encoded value: %w", err)
	}

	return value, nil
}
