package bintypes

import (
	"bytes"
)

// BinData is used to hold raw binary blob information for structs that need to
// support encoding to and from JSON. The json encoder will transcode this data
// for transport using the byte mode carried by the engine configuration.
//
// BinData is a struct wrapper rather than a named []byte: the json codec
// short-circuits byte-kinded types to string reads while decoding, which would
// leave an array-shaped wire value unparsed. A struct kind keeps the codec's
// generic value path in play for every wire shape.
type BinData struct {
	data []byte
}

// New returns a BinData holding data. The slice is not copied.
func New(data []byte) BinData {
	return BinData{data: data}
}

// Bytes returns the raw bytes held by the blob.
func (bin BinData) Bytes() []byte {
	return bin.data
}

// Len returns the number of bytes held by the blob.
func (bin BinData) Len() int {
	return len(bin.data)
}

// Equal reports whether two blobs hold the same bytes. A nil-backed blob and
// an empty blob are equal.
func (bin BinData) Equal(other BinData) bool {
	return bytes.Equal(bin.data, other.data)
}
