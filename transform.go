package anglicize

import "golang.org/x/text/transform"

// Transformer adapts the engine to the golang.org/x/text transform
// interface, so it can be chained with normalization forms or wrapped in
// transform.NewReader and transform.NewWriter. Like Anglicize, one
// Transformer serves one logical stream at a time.
type Transformer struct {
	a     Anglicize
	carry []byte // produced bytes the previous dst could not hold
}

// NewTransformer returns a Transformer for one logical stream.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform implements transform.Transformer. The engine buffers
// unresolved matches internally, so src is always consumed in full;
// transform.ErrShortSrc is never returned.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := copy(dst, t.carry)
	nDst = n
	t.carry = t.carry[n:]
	if len(t.carry) > 0 {
		return nDst, 0, transform.ErrShortDst
	}
	t.carry = nil

	out := t.a.Process(src)
	nSrc = len(src)
	if atEOF {
		out = append(out, t.a.Finalize()...)
	}

	n = copy(dst[nDst:], out)
	nDst += n
	if n < len(out) {
		t.carry = append([]byte(nil), out[n:]...)

		return nDst, nSrc, transform.ErrShortDst
	}

	return nDst, nSrc, nil
}

// Reset implements transform.Transformer.
func (t *Transformer) Reset() {
	t.a.Reset()
	t.carry = nil
}
