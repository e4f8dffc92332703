package qp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	cases := []struct {
		name       string
		raw        string
		lineLength int
		expected   string
	}{
		{
			"WORDS",
			"tere, tere, vana kere, kuidas sul l=C3=A4heb?", 20,
			"tere, tere, vana=\r\n kere, kuidas sul=\r\n l=C3=A4heb?",
		},
		{
			"ESCAPES",
			strings.Repeat("=C3=A4", 10), 20,
			strings.Repeat("=C3=A4=C3=A4=C3=A4=\r\n", 3) + "=C3=A4",
		},
		{
			"ESCAPE_AT_EDGE",
			"1234567890123456789=C3=A40", 20,
			"1234567890123456789=\r\n=C3=A40",
		},
		{
			"SPACES_AT_EDGE",
			"123456789012345678  90", 20,
			"123456789012345678=\r\n  90",
		},
		{
			"SHORT",
			"abc", 20,
			"abc",
		},
		{
			"EXACT",
			"12345", 5,
			"12345",
		},
		{
			"HARD_BREAKS",
			"aaaaaaaaaa\r\nbbbb\nc", 6,
			"aaaaa=\r\naaaaa\r\nbbbb\nc",
		},
		{
			"REMOVE_SOFT_BREAKS",
			"abc=\r\ndef=\nghi", 76,
			"abcdefghi",
		},
		{
			"REMOVE_SOFT_BREAK_PADDING",
			"abc= \t\r\ndef", 76,
			"abcdef",
		},
		{
			"DANGLING_EQ",
			"abc=", 76,
			"abc=3D",
		},
		{
			"DANGLING_EQ_HEX_BEFORE_SOFT_BREAK",
			"ab=4=\r\n1x", 76,
			"ab=3D41x",
		},
		{
			"DANGLING_EQ_BEFORE_SOFT_BREAK",
			"ab==\r\n41", 76,
			"ab=3D41",
		},
		{
			"JOINED_SPACE_BEFORE_HARD_BREAK",
			"foo =\r\n\r\nbar", 76,
			"foo=20\r\nbar",
		},
		{
			"JOINED_TAB_BEFORE_LF",
			"foo\t=\n\nbar", 76,
			"foo=09\nbar",
		},
		{
			"JOINED_SPACE_BEFORE_PADDING",
			"foo =\r\n \r\nbar", 76,
			"foo=20 \r\nbar",
		},
		{
			"ONLY_WHITESPACE_FITS",
			"a" + strings.Repeat(" ", 10) + "b", 6,
			"a=\r\n  =20=\r\n  =20=\r\n    b",
		},
		{
			"KEEP_UTF8",
			strings.Repeat("=C3=B5", 4), 10,
			"=C3=B5=\r\n=C3=B5=\r\n=C3=B5=\r\n=C3=B5",
		},
		{
			"TRAILING_WS_BEFORE_HARD_BREAK",
			"ab  \r\ncd", 76,
			"ab  \r\ncd",
		},
		{
			"DEFAULT_WIDTH",
			strings.Repeat("x", 80), 0,
			strings.Repeat("x", 75) + "=\r\n" + "xxxxx",
		},
		{
			"MINIMUM_WIDTH",
			"=C3=B5", 1,
			"=C3=\r\n=B5",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			folded := Fold(tc.raw, tc.lineLength)
			require.Equal(t, tc.expected, folded)

			require.Equal(t, string(DecodeString(tc.raw)), string(DecodeString(folded)))
			require.Equal(t, folded, Fold(folded, tc.lineLength))
		})
	}
}

func TestFoldIdempotent(t *testing.T) {
	rng := newRand()

	for round := 0; round < 100; round++ {
		encoded := Encode(randomText(rng, 1500), WithLineLength(0))
		lineLength := 4 + rng.IntN(80)

		folded := Fold(string(encoded), lineLength)
		require.Equal(t, folded, Fold(folded, lineLength))
		requireWellFormed(t, []byte(folded), lineLength)
		require.Equal(t, string(Decode(encoded)), string(DecodeString(folded)))
	}
}

// TestFoldForeignText folds text from another producer, with literal spaces
// before soft breaks and lowercase escapes.
func TestFoldForeignText(t *testing.T) {
	texts := []string{
		"Lorem ipsum dolor sit =\r\namet, =c3=a4 consectetur =\r\nadipiscing elit\r\n",
		"tere, tere, vana =\r\n\r\nkere, kuidas =\r\n \t\r\nsul =\n",
		"ab=4=\r\n1x =3=\nd= =\r\n=\r\n0 a=\r\n=4\r\n",
	}
	for _, raw := range texts {
		for lineLength := 4; lineLength < 40; lineLength++ {
			folded := Fold(raw, lineLength)
			require.Equal(t, string(DecodeString(raw)), string(DecodeString(folded)), "line length %d", lineLength)
			require.Equal(t, folded, Fold(folded, lineLength), "line length %d", lineLength)
			for _, line := range strings.Split(folded, "\n") {
				require.LessOrEqual(t, len(strings.TrimSuffix(line, "\r")), lineLength)
			}
		}
	}
}

func TestBreakLineInspectsPrefix(t *testing.T) {
	rng := newRand()

	for round := 0; round < 200; round++ {
		line := Encode(randomText(rng, 300), WithLineLength(0))
		line = bytes.ReplaceAll(bytes.ReplaceAll(line, []byte("\r"), nil), []byte("\n"), nil)
		lineLength := 4 + rng.IntN(40)
		if len(line) < lineLength+3 {
			continue
		}

		want, wantN := breakLine(nil, line, lineLength)
		got, gotN := breakLine(nil, line[:lineLength+2], lineLength)
		require.Equal(t, string(want), string(got))
		require.Equal(t, wantN, gotN)
	}
}
