package qp

// Encoder is the quoted-printable encoding state machine. Octets are pushed
// in with Feed in chunks of any size and the end of the stream is signalled
// with Finish; the concatenated output does not depend on how the input was
// chunked.
//
// An Encoder holds at most one undecided octet (a space, tab or CR whose
// form depends on the next octet) plus the encoded content of the current
// output line, which is kept until a soft line break can be placed.
type Encoder struct {
	lineLength int

	state   encodeState
	pending byte
	line    []byte

	consumed int64
	produced int64
}

type EncoderOption func(e *Encoder)

// WithLineLength sets the maximum length of an encoded line, including the
// "=" of a soft line break. n <= 0 disables soft line breaks, values below 4
// are raised to 4.
func WithLineLength(n int) EncoderOption {
	return func(e *Encoder) {
		if n <= 0 {
			e.lineLength = 0
			return
		}
		e.lineLength = max(n, minLineLength)
	}
}

// NewEncoder returns a new [Encoder] wrapping lines at DefaultLineLength
// unless configured otherwise.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{lineLength: DefaultLineLength}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Reset discards the [Encoder] e's state, keeping its configuration.
func (e *Encoder) Reset() {
	e.state = encodeNone
	e.pending = 0
	e.line = e.line[:0]
	e.consumed = 0
	e.produced = 0
}

// LineLength returns the configured maximum line length, 0 when lines are not wrapped.
func (e *Encoder) LineLength() int {
	return e.lineLength
}

// Consumed returns the number of octets fed to the encoder.
func (e *Encoder) Consumed() int64 {
	return e.consumed
}

// Produced returns the number of encoded bytes returned so far.
func (e *Encoder) Produced() int64 {
	return e.produced
}

// Feed encodes p, appends whatever output can already be decided to dst and
// returns the extended buffer.
func (e *Encoder) Feed(dst, p []byte) []byte {
	start := len(dst)
	e.consumed += int64(len(p))

	for i := 0; i < len(p); {
		c := p[i]

		// Resolve the pending octet, c is looked at again below.
		switch e.state {
		case encodeWS:
			e.state = encodeNone
			if c == '\r' || c == '\n' {
				dst = e.escape(dst, e.pending)
			} else {
				dst = e.literal(dst, e.pending)
			}
		case encodeCR:
			e.state = encodeNone
			if c == '\n' {
				dst = e.hardBreak(dst, "\r\n")
				i++
				continue
			}
			dst = e.escape(dst, '\r')
		}

		switch classLUT[c] {
		case classLiteral:
			n := literalRun(p[i:])
			e.line = append(e.line, p[i:i+n]...)
			dst = e.wrap(dst)
			i += n
			continue
		case classWS:
			e.state, e.pending = encodeWS, c
		case classCR:
			e.state = encodeCR
		case classLF:
			dst = e.hardBreak(dst, "\n")
		default:
			dst = e.escape(dst, c)
		}
		i++
	}

	e.produced += int64(len(dst) - start)
	return dst
}

// Finish resolves any pending state as the end of the stream, appends the
// remaining output to dst and returns the extended buffer. The Encoder is
// ready for a new stream afterwards.
func (e *Encoder) Finish(dst []byte) []byte {
	start := len(dst)

	switch e.state {
	case encodeWS:
		dst = e.escape(dst, e.pending)
	case encodeCR:
		dst = e.escape(dst, '\r')
	}
	e.state = encodeNone

	dst = e.flush(dst)

	e.produced += int64(len(dst) - start)
	return dst
}

func (e *Encoder) literal(dst []byte, c byte) []byte {
	e.line = append(e.line, c)
	return e.wrap(dst)
}

func (e *Encoder) escape(dst []byte, c byte) []byte {
	e.line = appendEscape(e.line, c)
	return e.wrap(dst)
}

// wrap emits soft broken lines while enough of the current line is known
// for breakLine to decide.
func (e *Encoder) wrap(dst []byte) []byte {
	if e.lineLength == 0 {
		dst = append(dst, e.line...)
		e.line = e.line[:0]
		return dst
	}

	consumed := 0
	for len(e.line)-consumed >= e.lineLength+3 {
		var n int
		dst, n = breakLine(dst, e.line[consumed:], e.lineLength)
		consumed += n
	}
	if consumed > 0 {
		e.line = append(e.line[:0], e.line[consumed:]...)
	}
	return dst
}

func (e *Encoder) flush(dst []byte) []byte {
	if e.lineLength == 0 {
		dst = append(dst, e.line...)
	} else {
		dst = appendWrapped(dst, e.line, e.lineLength)
	}
	e.line = e.line[:0]
	return dst
}

func (e *Encoder) hardBreak(dst []byte, eol string) []byte {
	dst = e.flush(dst)
	return append(dst, eol...)
}
