// Package operand contains the fixed-width value types embedded in decoded
// CHIP-8 instructions: 12-bit addresses, 8-bit immediates and 4-bit register
// identifiers. All constructors validate their input so that a decoded
// operation never carries an out-of-range operand.
package operand

import "fmt"

// CHIP-8 value range limits.
const (
	MaxAddress   = 0xFFF // highest addressable memory location (4KB)
	MaxImmediate = 0xFF  // highest 8-bit immediate value
	NumRegisters = 16    // number of general purpose registers
)

// Address is a 12-bit memory address.
type Address uint16

// NewAddress packs three 4-bit nibbles into an address, high nibble first.
func NewAddress(x, y, z byte) Address {
	return Address(uint16(x&0x0F)<<8 | uint16(y&0x0F)<<4 | uint16(z&0x0F))
}

// AddressFromUint16 converts a raw value into an address.
// It returns an error if the value exceeds the 12-bit range.
func AddressFromUint16(value uint16) (Address, error) {
	if value > MaxAddress {
		return 0, fmt.Errorf("address %#04x: %w", value, ErrAddressRange)
	}
	return Address(value), nil
}

// Uint16 returns the address as a raw 16-bit value.
func (a Address) Uint16() uint16 {
	return uint16(a)
}

// String returns the canonical text form, three uppercase hex digits.
func (a Address) String() string {
	return fmt.Sprintf("%03X", uint16(a))
}

// Immediate is an 8-bit constant embedded in an instruction word.
type Immediate uint8

// NewImmediate packs two 4-bit nibbles into an immediate, high nibble first.
func NewImmediate(x, y byte) Immediate {
	return Immediate((x&0x0F)<<4 | y&0x0F)
}

// Uint8 returns the immediate as a raw byte.
func (i Immediate) Uint8() uint8 {
	return uint8(i)
}

// String returns the canonical text form, two uppercase hex digits.
func (i Immediate) String() string {
	return fmt.Sprintf("%02X", uint8(i))
}

// Register identifies one of the 16 general purpose registers V0..VF.
// VF doubles as the carry/borrow/collision flag register.
type Register uint8

// The 16 general purpose registers.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
)

// NewRegister returns the register identified by the low nibble of x.
func NewRegister(x byte) Register {
	return Register(x & 0x0F)
}

// RegisterFromUint8 converts a raw value into a register identifier.
// It returns an error if the value is not in [0,15].
func RegisterFromUint8(value uint8) (Register, error) {
	if value >= NumRegisters {
		return 0, fmt.Errorf("register %d: %w", value, ErrRegisterRange)
	}
	return Register(value), nil
}

// String returns the canonical text form, V followed by one uppercase hex digit.
func (r Register) String() string {
	return fmt.Sprintf("V%X", uint8(r))
}
