// Package anglicize converts UTF-8 text to an ASCII approximation: every
// recognized character or character sequence is replaced with its English
// transcription (я -> ya, χ -> kh, Щ -> Sch inside a title-case word,
// SCH inside an all-caps one) while unrecognized bytes pass through
// unchanged. Input does not have to be valid UTF-8 and may arrive in
// arbitrary chunks.
package anglicize

// Anglicize is a streaming transliterator. It matches input bytes against
// the transliteration trie, preferring the longest recognized sequence,
// and defers capitalized spellings until it can tell a Title-Case word
// from an ALL-CAPS one.
//
// The zero value is ready to use. An instance keeps per-stream state and
// must not be shared between goroutines; independent instances may run
// concurrently because the trie itself is read-only.
type Anglicize struct {
	state  int32  // current trie node
	finite int32  // most recent node with a spelling on the current path, 0 = none
	buf    []byte // bytes consumed past the last confirmed spelling
	caps   bool
	held   []byte // deferred title-shaped spelling plus any bridged spaces
	out    []byte
}

// New returns a transliterator for one logical stream.
func New() *Anglicize {
	return &Anglicize{}
}

// Bytes anglicizes a whole input in one shot.
func Bytes(text []byte) []byte {
	a := New()
	out := a.Process(text)

	return append(out, a.Finalize()...)
}

// String anglicizes a whole string in one shot.
func String(text string) string {
	return string(Bytes([]byte(text)))
}

// Process anglicizes a chunk of input and returns every byte that can be
// emitted so far. More input is expected; bytes that may still extend a
// longer match, and spellings awaiting a capitalization decision, stay
// buffered until a later Process call or Finalize resolves them.
func (a *Anglicize) Process(buf []byte) []byte {
	a.out = nil
	for _, b := range buf {
		a.push(b)
	}

	out := a.out
	a.out = nil

	return out
}

// Finalize flushes everything still buffered as if no further input will
// arrive and leaves the instance in its initial state, ready for a new
// stream.
func (a *Anglicize) Finalize() []byte {
	a.out = nil
	for len(a.buf) > 0 || a.finite != 0 {
		for _, b := range a.backoff() {
			a.push(b)
		}
	}

	if a.caps {
		a.out = append(a.out, a.held...)
		a.caps = false
		a.held = nil
	}

	out := a.out
	a.out = nil

	return out
}

// Reset discards all buffered state.
func (a *Anglicize) Reset() {
	*a = Anglicize{}
}

// push advances the matcher by one byte. Backtracking replays are handled
// with an explicit queue rather than recursion so that pathological inputs
// cannot grow the call stack.
func (a *Anglicize) push(b byte) {
	queue := []byte{b}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		next, ok := childOf(a.state, c)
		if !ok {
			if a.state == trieRoot {
				// Nothing buffered and no path for this byte:
				// it passes through as a literal.
				a.holdByte(c)

				continue
			}

			// A longer match failed. Commit the shortest confirmed
			// result and re-run the bytes it did not cover, in
			// input order, ahead of the rest of the queue.
			replay := a.backoff()
			requeue := make([]byte, 0, len(replay)+1+len(queue))
			requeue = append(requeue, replay...)
			requeue = append(requeue, c)
			requeue = append(requeue, queue...)
			queue = requeue

			continue
		}

		if leaf(next) {
			// The match cannot extend further; commit it now.
			a.state = trieRoot
			a.finite = 0
			a.buf = a.buf[:0]
			a.holdXlat(spelling(next))

			continue
		}

		a.state = next
		if spelling(next) != "" {
			a.finite = next
			a.buf = a.buf[:0]
		} else {
			a.buf = append(a.buf, c)
		}
	}
}

// backoff commits the most specific confirmed match (or, failing that, the
// first buffered byte as a literal) and returns the bytes that must be
// re-run against the trie from the root.
func (a *Anglicize) backoff() []byte {
	a.state = trieRoot

	var replay []byte
	if a.finite != 0 {
		replay = append(replay, a.buf...)
		a.holdXlat(spelling(a.finite))
		a.finite = 0
	} else {
		replay = append(replay, a.buf[1:]...)
		a.holdByte(a.buf[0])
	}
	a.buf = a.buf[:0]

	return replay
}
