package decoder

import "fmt"

// Error reports an instruction word that matches no documented opcode
// pattern. It carries the address of the word and the raw nibble values
// so the failure can be diagnosed; the caller decides whether to halt
// the program or skip the instruction.
type Error struct {
	Address uint16
	Hi      byte
	Lo      byte
}

func newError(address uint16, hi, lo byte) *Error {
	return &Error{
		Address: address,
		Hi:      hi,
		Lo:      lo,
	}
}

// Nibbles returns the four 4-bit fields of the offending instruction word.
func (e *Error) Nibbles() (a, b, c, d byte) {
	return e.Hi >> 4, e.Hi & 0x0F, e.Lo >> 4, e.Lo & 0x0F
}

func (e *Error) Error() string {
	a, b, c, d := e.Nibbles()
	return fmt.Sprintf("unknown opcode at %03X: %X%X%X%X", e.Address, a, b, c, d)
}
