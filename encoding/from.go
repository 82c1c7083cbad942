package encoding

import (
	"bytes"
	"golang.org/x/xerrors"
	"io"
	"strings"
)
import "github.com/ugorji/go/codec"

/*
FromString deserializes a value from a json string with the given
configuration.

	type Record struct {
		Data bintypes.BinData
	}

	config := encoding.NewConfig().SetBytesHex().EnableHexPrefix()
	record := Record{}
	err := encoding.FromString(`{"Data":"0x010203"}`, config, &record)
*/
func FromString(source string, config Config, receiver interface{}) error {
	return FromReader(strings.NewReader(source), config, receiver)
}

// FromSlice deserializes a value from a json byte slice with the given
// configuration.
func FromSlice(source []byte, config Config, receiver interface{}) error {
	return FromReader(bytes.NewReader(source), config, receiver)
}

// FromReader deserializes a value from a json reader with the given
// configuration. If the reader is a closer it is closed once the decode
// completes.
func FromReader(reader io.Reader, config Config, receiver interface{}) error {
	engine, err := NewEngine(config)
	if err != nil {
		return err
	}
	return engine.Decode(receiver, reader)
}

/*
FromValue deserializes a value from an already-parsed generic json tree
(map[string]interface{} / []interface{} / scalars) with the given
configuration.

The tree is re-serialized to json text and run back through FromString. That
costs a second pass over the data, but it means binary fields inside the tree
travel the exact same interception path as text input, rather than needing a
parallel tree-walking decoder.
*/
func FromValue(value interface{}, config Config, receiver interface{}) error {
	var valueText []byte

	plainHandle := &codec.JsonHandle{}
	valueEncoder := codec.NewEncoderBytes(&valueText, plainHandle)
	if err := valueEncoder.Encode(value); err != nil {
		return xerrors.Errorf("error serializing value: %w", err)
	}

	return FromSlice(valueText, config, receiver)
}
