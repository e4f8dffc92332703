package qp

import (
	"bytes"
)

const (
	// DefaultLineLength is the maximum encoded line length recommended by RFC 2045.
	DefaultLineLength = 76

	// minLineLength is the smallest width that holds an escape and the soft break marker.
	minLineLength = 4
)

var softBreak = []byte("=\r\n")

// Fold re-wraps already encoded quoted-printable text so that no physical
// line, including the trailing "=" of a soft line break, is longer than
// lineLength. Existing soft line breaks are removed and new ones inserted;
// hard line breaks are kept as they are. A lineLength <= 0 selects
// DefaultLineLength.
//
// A soft line break is never placed inside an =XX escape nor directly after
// a literal space or tab. Within the last third of a line a break before
// whitespace is preferred, and escapes of a multi-byte UTF-8 sequence are
// kept together where possible.
//
// Folding does not change what the text decodes to. An "=" that does not
// start a complete escape on its own line is written as "=3D", and a space
// or tab that ended a soft broken line is escaped when the joined line
// reaches a hard line break.
func Fold(s string, lineLength int) string {
	return string(appendFold(nil, []byte(s), lineLength))
}

func appendFold(dst, src []byte, lineLength int) []byte {
	if lineLength <= 0 {
		lineLength = DefaultLineLength
	}
	lineLength = max(lineLength, minLineLength)

	var line []byte
	for len(src) > 0 {
		content, eol, rest := cutLine(src)
		src = rest

		if len(eol) > 0 {
			if body, ok := cutSoftBreak(content); ok {
				line = appendSegment(line, body)
				continue
			}
		}

		joined := len(line)
		line = appendSegment(line, content)
		if len(eol) > 0 {
			line = escapeJoinedSpace(line, joined)
		}
		dst = appendWrapped(dst, line, lineLength)
		dst = append(dst, eol...)
		line = line[:0]
	}

	return appendWrapped(dst, line, lineLength)
}

// cutLine splits off the first line of src. eol is "\r\n", "\n" or empty
// when src has no line ending.
func cutLine(src []byte) (content, eol, rest []byte) {
	i := bytes.IndexByte(src, '\n')
	if i < 0 {
		return src, nil, nil
	}
	if i > 0 && src[i-1] == '\r' {
		return src[:i-1], src[i-1 : i+1], src[i+1:]
	}
	return src[:i], src[i : i+1], src[i+1:]
}

// cutSoftBreak reports whether content ends with a soft line break marker,
// "=" optionally followed by whitespace padding, and returns the content
// before it.
func cutSoftBreak(content []byte) ([]byte, bool) {
	trimmed := bytes.TrimRight(content, " \t")
	if len(trimmed) == 0 || trimmed[len(trimmed)-1] != '=' {
		return content, false
	}
	return trimmed[:len(trimmed)-1], true
}

// appendSegment appends one physical line to dst, writing every "=" that
// does not start a complete escape within src as "=3D". Joined with the next
// line, such an "=" could otherwise pick up its hex digits.
func appendSegment(dst, src []byte) []byte {
	for {
		i := bytes.IndexByte(src, '=')
		if i < 0 {
			return append(dst, src...)
		}
		if tokenLen(src, i) == 3 {
			dst = append(dst, src[:i+3]...)
			src = src[i+3:]
			continue
		}
		dst = appendEscape(append(dst, src[:i]...), '=')
		src = src[i+1:]
	}
}

// escapeJoinedSpace escapes the last octet of line[:joined] when it is a
// space or tab followed only by whitespace. Before a hard line break a
// decoder drops that run as padding, but it was data while a soft line
// break followed it.
func escapeJoinedSpace(line []byte, joined int) []byte {
	if joined == 0 || !isWS(line[joined-1]) || len(bytes.TrimLeft(line[joined:], " \t")) > 0 {
		return line
	}
	tail := bytes.Clone(line[joined:])
	line = appendEscape(line[:joined-1], line[joined-1])
	return append(line, tail...)
}

func appendWrapped(dst, line []byte, lineLength int) []byte {
	for len(line) > lineLength {
		var n int
		dst, n = breakLine(dst, line, lineLength)
		line = line[n:]
	}
	return append(dst, line...)
}

// breakLine appends the head of line followed by a soft line break to dst
// and returns the number of bytes of line it consumed. Only line[:lineLength+2]
// is inspected, which lets the Encoder make the same decision as Fold before
// the rest of the line is known.
func breakLine(dst, line []byte, lineLength int) ([]byte, int) {
	limit := lineLength - 1 // room for the "="
	margin := limit - limit/3

	safe, safeRun, word := 0, 0, 0
	run := 0 // start of the run of escapes ending at i
	for i := 0; i < len(line); {
		n := tokenLen(line, i)
		if i+n > limit {
			break
		}
		i += n
		if n == 1 {
			run = i
		}

		if isWS(line[i-1]) {
			continue
		}
		safe, safeRun = i, run
		if i > margin && i < len(line) && isWS(line[i]) {
			word = i
		}
	}

	switch {
	case word > 0:
		dst = append(dst, line[:word]...)
		return append(dst, softBreak...), word
	case safe > 0:
		n := keepSequence(line, safe, safeRun)
		dst = append(dst, line[:n]...)
		return append(dst, softBreak...), n
	}

	// Only whitespace fits: end the line with an escaped space or tab instead.
	k := max(limit-3, 0)
	dst = append(dst, line[:k]...)
	dst = appendEscape(dst, line[k])
	return append(dst, softBreak...), k + 1
}

// keepSequence moves the break position b back to before the lead octet
// when the token at b escapes a UTF-8 continuation octet. Escapes from run
// to b are contiguous.
func keepSequence(line []byte, b, run int) int {
	if b+3 > len(line) || tokenLen(line, b) != 3 || !isContinuation(escapeValue(line, b)) {
		return b
	}

	for j, steps := b, 0; steps < 3 && j-3 >= run; steps++ {
		j -= 3
		v := escapeValue(line, j)
		switch {
		case v >= 0xC0:
			if j > 0 && !isWS(line[j-1]) {
				return j
			}
			return b
		case !isContinuation(v):
			return b
		}
	}
	return b
}

func isContinuation(v byte) bool {
	return v&0xC0 == 0x80
}
