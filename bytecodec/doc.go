// Pure transforms between byte blobs and their json wire representations.
/*
This package holds the formatter half of the byte transcoding layer: plain
functions that turn a []byte into the representation chosen by a
bytemode.Mode and back again. There is no coupling to the json handle here,
which keeps each mode's rules independently testable and lets the encoding
and decoding extensions share one implementation.
*/
package bytecodec
