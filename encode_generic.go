package qp

// octet classes used by the Encoder
const (
	classEscape  byte = iota // always written as =XX
	classLiteral             // printable, written as is
	classWS                  // space or tab
	classCR
	classLF
)

const upperHex = "0123456789ABCDEF"

// classLUT maps each octet to its encoding class.
var classLUT [256]byte

// unhexLUT maps hex digits (either case) to their value, or 0xFF for any other byte.
var unhexLUT [256]byte

func init() {
	for n := 0; n < 256; n++ {
		switch {
		case n == ' ' || n == '\t':
			classLUT[n] = classWS
		case n == '\r':
			classLUT[n] = classCR
		case n == '\n':
			classLUT[n] = classLF
		case n >= 33 && n <= 126 && n != '=':
			classLUT[n] = classLiteral
		default:
			classLUT[n] = classEscape
		}

		switch {
		case n >= '0' && n <= '9':
			unhexLUT[n] = byte(n - '0')
		case n >= 'A' && n <= 'F':
			unhexLUT[n] = byte(n - 'A' + 10)
		case n >= 'a' && n <= 'f':
			unhexLUT[n] = byte(n - 'a' + 10)
		default:
			unhexLUT[n] = 0xFF
		}
	}
}

func isHex(c byte) bool {
	return unhexLUT[c] != 0xFF
}

func isWS(c byte) bool {
	return c == ' ' || c == '\t'
}

func appendEscape(dst []byte, c byte) []byte {
	return append(dst, '=', upperHex[c>>4], upperHex[c&0x0F])
}

// literalRun returns the length of the prefix of src made only of octets
// that are written unchanged.
func literalRun(src []byte) int {
	for i, c := range src {
		if classLUT[c] != classLiteral {
			return i
		}
	}
	return len(src)
}

// tokenLen returns the length of the token starting at s[i]: 3 for a
// complete =HH escape, 1 for anything else.
func tokenLen(s []byte, i int) int {
	if s[i] == '=' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
		return 3
	}
	return 1
}

// escapeValue returns the octet encoded by the escape token at s[i:i+3].
func escapeValue(s []byte, i int) byte {
	return unhexLUT[s[i+1]]<<4 | unhexLUT[s[i+2]]
}
