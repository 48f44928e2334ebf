package circuit

import "errors"

// ErrUnknownElement is returned by BranchOffset for an element never added
// to the circuit.
var ErrUnknownElement = errors.New("circuit: element not present")
