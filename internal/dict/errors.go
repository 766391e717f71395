package dict

import "errors"

// ErrUnavailable is returned when a canonical dictionary locale has no
// packaged wordlist file (§4.5: "the loader returns dictionary_unavailable").
var ErrUnavailable = errors.New("dict: dictionary unavailable")
