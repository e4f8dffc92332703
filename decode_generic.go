package qp

import (
	"bytes"
)

// decodeGeneric decodes src, appending to dst, starting in and updating d's state.
func (d *Decoder) decodeGeneric(dst, src []byte) []byte {
	for i := 0; i < len(src); {
		if d.state == StateNone {
			// copy everything up to the next byte that may need a look ahead
			n := bytes.IndexAny(src[i:], "= \t")
			if n < 0 {
				return append(dst, src[i:]...)
			}
			dst = append(dst, src[i:i+n]...)
			i += n
		}

		dst = d.step(dst, src[i])
		i++
	}

	return dst
}

// step advances the state machine by one byte.
func (d *Decoder) step(dst []byte, c byte) []byte {
	switch d.state {
	case StateNone:
		switch {
		case c == '=':
			d.hold(StateEQ, c)
		case isWS(c):
			d.hold(StateWS, c)
		default:
			// line endings are passed through verbatim
			dst = append(dst, c)
		}

	case StateEQ:
		switch {
		case isHex(c):
			d.hold(StateEQHex, c)
		case isWS(c):
			d.hold(StateEQWS, c)
		case c == '\r':
			d.hold(StateEQCR, c)
		case c == '\n':
			d.drop() // soft line break
		default:
			return d.reject(dst, c)
		}

	case StateEQHex:
		if !isHex(c) {
			return d.reject(dst, c)
		}
		dst = append(dst, unhexLUT[d.pending[1]]<<4|unhexLUT[c])
		d.drop()

	case StateEQWS:
		switch {
		case isWS(c):
			d.hold(StateEQWS, c)
		case c == '\r':
			d.hold(StateEQCR, c)
		case c == '\n':
			d.drop() // soft line break with transport padding
		default:
			return d.reject(dst, c)
		}

	case StateEQCR:
		if c != '\n' {
			return d.reject(dst, c)
		}
		d.drop()

	case StateWS:
		switch {
		case isWS(c):
			d.hold(StateWS, c)
		case c == '\r':
			d.hold(StateWSCR, c)
		case c == '\n':
			// whitespace before a hard line break is transport padding
			d.drop()
			dst = append(dst, c)
		default:
			dst = d.release(dst)
			return d.step(dst, c)
		}

	case StateWSCR:
		if c != '\n' {
			dst = d.release(dst)
			return d.step(dst, c)
		}
		d.drop()
		dst = append(dst, '\r', '\n')
	}

	return dst
}

func (d *Decoder) hold(s State, c byte) {
	d.state = s
	d.pending = append(d.pending, c)
}

func (d *Decoder) drop() {
	d.state = StateNone
	d.pending = d.pending[:0]
}

// release writes the pending bytes unchanged.
func (d *Decoder) release(dst []byte) []byte {
	dst = append(dst, d.pending...)
	d.drop()
	return dst
}

// reject handles an "=" that turned out not to start an escape or a soft
// line break: it is written literally and the bytes after it, c included,
// are scanned again.
func (d *Decoder) reject(dst []byte, c byte) []byte {
	dst = d.unescape(dst)
	return d.step(dst, c)
}

// unescape writes the pending "=" literally and replays the bytes held after it.
func (d *Decoder) unescape(dst []byte) []byte {
	held := d.pending
	d.pending, d.spare = d.spare[:0], nil
	d.state = StateNone

	dst = append(dst, '=')
	for _, c := range held[1:] {
		dst = d.step(dst, c)
	}

	d.spare = held[:0]
	return dst
}
