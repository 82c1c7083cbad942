// Configurable json encoding and decoding of binary blob fields.
/*
This package is the wiring layer of bytejson: a Config value object describing
the wire representation for byte blobs, an Engine that attaches that
configuration to a json handle through per-type extensions, and entry points
(FromString / FromSlice / FromReader / FromValue and the symmetric To*
functions) that drive a full encode or decode cycle.

The json library itself -- tokenization, number parsing, string escaping,
generic trees -- is delegated entirely to github.com/ugorji/go/codec. This
package only decides what a BinData leaf looks like on the wire.
*/
package encoding
