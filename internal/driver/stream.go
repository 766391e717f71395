package driver

// Splitter is a restartable, finite lazy sequence over one string's
// segments (§4.7 "stream"): each Next call advances the cursor and
// returns the next segment, until the string is exhausted.
type Splitter struct {
	d       *Driver
	rest    string
	o       Options
	err     error
	started bool
}

// Stream returns a Splitter positioned before the first segment of s.
func (d *Driver) Stream(s string, o Options) *Splitter {
	return &Splitter{d: d, rest: s, o: o}
}

// Next advances the splitter and returns the next segment, or ok=false
// once the sequence is exhausted (or an error has occurred, see Err).
func (sp *Splitter) Next() (segment string, ok bool) {
	if sp.err != nil || sp.rest == "" {
		return "", false
	}
	sp.started = true
	seg, rest, ok, err := sp.d.Next(sp.rest, sp.o)
	if err != nil {
		sp.err = err
		return "", false
	}
	if !ok {
		sp.rest = ""
		return "", false
	}
	sp.rest = rest
	return seg, true
}

// Err returns the first error encountered by Next, if any.
func (sp *Splitter) Err() error { return sp.err }
