package operand

import "errors"

var (
	// ErrAddressRange indicates a value outside the 12-bit address range.
	ErrAddressRange = errors.New("address exceeds 12 bit range")
	// ErrRegisterRange indicates a register identifier outside [0,15].
	ErrRegisterRange = errors.New("register identifier exceeds range")
)
