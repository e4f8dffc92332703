package qp

// State is the current Decoder State, the values refer to the previously seen
// characters in the stream which could not be classified yet.
//
// The shorthands represent:
// EQ (=), Hex (one hex digit), WS (space or tab), CR (\r)
type State int

const (
	StateNone  State = iota // default, nothing pending
	StateEQ                 // "="
	StateEQHex              // "=X"
	StateEQWS               // "=" followed by space/tab padding
	StateEQCR               // "=" [padding] "\r"
	StateWS                 // run of space/tab
	StateWSCR               // run of space/tab followed by "\r"
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateEQ:
		return "EQ"
	case StateEQHex:
		return "EQHex"
	case StateEQWS:
		return "EQWS"
	case StateEQCR:
		return "EQCR"
	case StateWS:
		return "WS"
	case StateWSCR:
		return "WSCR"
	}
	return "State(?)"
}

// escaping reports whether the pending bytes start with an unresolved "=".
func (s State) escaping() bool {
	return s == StateEQ || s == StateEQHex || s == StateEQWS || s == StateEQCR
}

// encodeState is the Encoder's pending byte, held until the following byte
// decides its representation.
type encodeState int

const (
	encodeNone encodeState = iota
	encodeWS               // space or tab, escaped if a line ending or the end of stream follows
	encodeCR               // "\r", a hard break if "\n" follows, "=0D" otherwise
)
