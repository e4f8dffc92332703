package qp

// Decoder is the quoted-printable decoding state machine. Encoded text is
// pushed in with Feed in chunks of any size and the end of the stream is
// signalled with Finish; the concatenated output does not depend on where
// chunk boundaries fall relative to escapes and line breaks.
//
// Decoding is lenient: an "=" that starts neither an escape nor a soft line
// break is passed through literally.
type Decoder struct {
	state   State
	pending []byte // bytes seen but not yet classified, see State
	spare   []byte

	consumed int64
	produced int64
}

// NewDecoder returns a new [Decoder].
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset discards the [Decoder] d's state.
func (d *Decoder) Reset() {
	d.drop()
	d.consumed = 0
	d.produced = 0
}

// State returns what the decoder is waiting to see.
func (d *Decoder) State() State {
	return d.state
}

// Consumed returns the number of encoded bytes fed to the decoder.
func (d *Decoder) Consumed() int64 {
	return d.consumed
}

// Produced returns the number of decoded octets returned so far.
func (d *Decoder) Produced() int64 {
	return d.produced
}

// Feed decodes p, appends every octet that can already be decided to dst and
// returns the extended buffer.
func (d *Decoder) Feed(dst, p []byte) []byte {
	start := len(dst)
	d.consumed += int64(len(p))

	dst = d.decodeGeneric(dst, p)

	d.produced += int64(len(dst) - start)
	return dst
}

// Finish resolves any pending state as the end of the stream, appends the
// remaining output to dst and returns the extended buffer. A dangling "=" or
// "=X" and trailing whitespace are written literally, since no line ending
// followed them. The Decoder is ready for a new stream afterwards.
func (d *Decoder) Finish(dst []byte) []byte {
	start := len(dst)

	if d.state.escaping() {
		dst = d.unescape(dst)
	}
	dst = d.release(dst)

	d.produced += int64(len(dst) - start)
	return dst
}
