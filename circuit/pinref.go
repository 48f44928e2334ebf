package circuit

import "github.com/RuiCat/dkcircuit/element"

// PinOrName is one argument to Connect: either a resolved element pin or a
// user-declared net name. Build one with Pin or Name.
type PinOrName struct {
	pin  *element.Pin
	name string
}

// Pin wraps an element pin for use with Connect or NetFor.
func Pin(p element.Pin) PinOrName { return PinOrName{pin: &p} }

// Name wraps a net name for use with Connect or NetFor. Naming a net that
// doesn't exist yet creates it empty.
func Name(name string) PinOrName { return PinOrName{name: name} }
