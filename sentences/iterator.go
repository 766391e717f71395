package sentences

import seg "github.com/gocldr/segment"

// Iterator is a restartable, finite lazy sequence over one string's
// sentences.
type Iterator struct {
	sp  *seg.Splitter
	cur string
}

func newIterator(s string, o seg.Options) *Iterator {
	return &Iterator{sp: seg.NewSplitter(s, o)}
}

// Next advances the iterator, reporting whether a sentence is available.
func (it *Iterator) Next() bool {
	v, ok := it.sp.Next()
	it.cur = v
	return ok
}

// Value returns the sentence Next most recently produced.
func (it *Iterator) Value() string { return it.cur }

// Err returns the first error encountered, if any.
func (it *Iterator) Err() error { return it.sp.Err() }
