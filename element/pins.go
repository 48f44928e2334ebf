package element

import "strconv"

// PinEntry addresses one (branch, polarity) contribution of a pin, in the
// element's own local branch numbering (1..nb). Polarity is always -1 or
// +1.
type PinEntry struct {
	Branch   int
	Polarity int
}

// Pin is an opaque (element, branch/polarity entries) handle, returned by
// Element.Pin and consumed by Circuit.Connect.
type Pin struct {
	Elem    *Element
	Name    string
	Entries []PinEntry
}

// defaultPins builds the fallback pin map when none is supplied: integer
// names "1".."2*nb", pin 2k-1 positive on branch k, pin 2k negative on
// branch k.
func defaultPins(nb int) map[string][]PinEntry {
	pins := make(map[string][]PinEntry, 2*nb)
	for k := 1; k <= nb; k++ {
		pos := strconv.Itoa(2*k - 1)
		neg := strconv.Itoa(2 * k)
		pins[pos] = []PinEntry{{Branch: k, Polarity: 1}}
		pins[neg] = []PinEntry{{Branch: k, Polarity: -1}}
	}
	return pins
}

// validatePins checks every entry addresses a branch in 1..nb with a valid
// polarity.
func validatePins(pins map[string][]PinEntry, nb int) error {
	for name, entries := range pins {
		for _, e := range entries {
			if e.Branch < 1 || e.Branch > nb {
				return &ErrPinOutOfRange{PinName: name, Branch: e.Branch, NB: nb}
			}
			if e.Polarity != 1 && e.Polarity != -1 {
				return &ErrPinOutOfRange{PinName: name, Branch: e.Branch, NB: nb}
			}
		}
	}
	return nil
}
