package qp

// MaxLength returns the maximum possible number of bytes a single Feed or
// Finish of an [Encoder] can append, given length input octets and the
// encoder's lineLength.
func MaxLength(length, lineLength int) int {
	ret := (length + 1) * 3 // all octets escaped, plus one held back by the previous call
	if lineLength <= 0 {
		return ret
	}

	carry := lineLength + 2 // encoded line content held back by the previous call
	ret += carry

	// every soft broken line holds at least one token and may turn a
	// trailing space into an escape
	return ret + (length+1+carry)*(len(softBreak)+2)
}
