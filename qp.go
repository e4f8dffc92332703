// Package qp implements the quoted-printable content transfer encoding of
// RFC 2045 section 6.7.
//
// [Encoder] and [Decoder] are streaming state machines producing the same
// output however their input is split into chunks; [Writer] and [Reader]
// adapt them to io.Writer and io.Reader. [Fold] re-wraps encoded text to a
// different line length.
package qp

// Encode returns the quoted-printable encoding of src.
func Encode(src []byte, opts ...EncoderOption) []byte {
	e := NewEncoder(opts...)
	dst := e.Feed(make([]byte, 0, len(src)+len(src)/2), src)
	return e.Finish(dst)
}

// EncodeToString returns the quoted-printable encoding of src as a string.
func EncodeToString(src []byte, opts ...EncoderOption) string {
	return string(Encode(src, opts...))
}

// Decode returns the octets represented by the quoted-printable text src.
// Malformed escapes are kept literally, so Decode never fails.
func Decode(src []byte) []byte {
	d := NewDecoder()
	dst := d.Feed(make([]byte, 0, len(src)), src)
	return d.Finish(dst)
}

// DecodeString returns the octets represented by the quoted-printable text s.
func DecodeString(s string) []byte {
	return Decode([]byte(s))
}
