//go:build go1.23

package driver

import "iter"

// All returns an iter.Seq over s's segments, for use with range, mirroring
// Split but without building the intermediate slice.
func (d *Driver) All(s string, o Options) iter.Seq[string] {
	return func(yield func(string) bool) {
		sp := d.Stream(s, o)
		for {
			seg, ok := sp.Next()
			if !ok {
				return
			}
			if !yield(seg) {
				return
			}
		}
	}
}
