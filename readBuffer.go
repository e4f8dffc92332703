package qp

const defaultReadBufSize = 32 * 1024

// readBuffer holds decoded bytes that have not been handed to the caller yet.
type readBuffer struct {
	buf   []byte
	start int
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:]
}

func (rb *readBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	rb.start += consumed
	if rb.start >= len(rb.buf) {
		rb.buf, rb.start = rb.buf[:0], 0
	}
}

// compact moves the unread bytes to the start so that appending reuses the buffer.
func (rb *readBuffer) compact() {
	if rb.start == 0 {
		return
	}
	n := copy(rb.buf, rb.buf[rb.start:])
	rb.buf, rb.start = rb.buf[:n], 0
}
