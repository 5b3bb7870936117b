// Package operation defines the closed set of legal CHIP-8 operations.
// Each operation is a small struct carrying only the already-validated
// operands its semantics require. An operation is created once by the
// decoder and consumed once by the executor.
package operation

import (
	"fmt"

	"github.com/retroenv/gochip8/operand"
)

// Operation is one decoded CHIP-8 instruction. The set of implementations
// is closed; the unexported marker method prevents definitions outside
// this package.
type Operation interface {
	fmt.Stringer

	operation()
}

// Sys is the legacy machine code routine call (0nnn). Conforming programs
// do not use it; it decodes for compatibility and executes as a no-op.
type Sys struct {
	Target operand.Address
}

// ClearScreen clears the display (00E0).
type ClearScreen struct{}

// Return returns from a subroutine (00EE).
type Return struct{}

// Jump sets the program counter to an address (1nnn).
type Jump struct {
	Target operand.Address
}

// Call pushes the return address and jumps to a subroutine (2nnn).
type Call struct {
	Target operand.Address
}

// SkipEqual skips the next instruction if Vx equals the immediate (3xkk).
type SkipEqual struct {
	X     operand.Register
	Value operand.Immediate
}

// SkipNotEqual skips the next instruction if Vx differs from the immediate (4xkk).
type SkipNotEqual struct {
	X     operand.Register
	Value operand.Immediate
}

// SkipRegistersEqual skips the next instruction if Vx equals Vy (5xy0).
type SkipRegistersEqual struct {
	X operand.Register
	Y operand.Register
}

// SetImmediate sets Vx to the immediate (6xkk).
type SetImmediate struct {
	Dst   operand.Register
	Value operand.Immediate
}

// AddImmediate adds the immediate to Vx without touching the flag register (7xkk).
type AddImmediate struct {
	Dst   operand.Register
	Value operand.Immediate
}

// Copy sets Vx to the value of Vy (8xy0).
type Copy struct {
	Dst operand.Register
	Src operand.Register
}

// Or sets Vx to Vx OR Vy (8xy1).
type Or struct {
	Dst operand.Register
	Src operand.Register
}

// And sets Vx to Vx AND Vy (8xy2).
type And struct {
	Dst operand.Register
	Src operand.Register
}

// Xor sets Vx to Vx XOR Vy (8xy3).
type Xor struct {
	Dst operand.Register
	Src operand.Register
}

// AddCarry adds Vy to Vx, wrapping modulo 256, VF = 1 on unsigned
// overflow (8xy4).
type AddCarry struct {
	Dst operand.Register
	Src operand.Register
}

// SubBorrow subtracts Vy from Vx, wrapping modulo 256, VF = 1 if no
// borrow occurred (8xy5).
type SubBorrow struct {
	Dst operand.Register
	Src operand.Register
}

// ShiftRight shifts Vx right by one bit, VF receives the shifted out
// least significant bit (8xy6). Src is decoded for completeness but
// ignored by execution.
type ShiftRight struct {
	Dst operand.Register
	Src operand.Register
}

// SubBorrowReverse sets Vx to Vy minus Vx, wrapping modulo 256, VF = 1
// if no borrow occurred (8xy7).
type SubBorrowReverse struct {
	Dst operand.Register
	Src operand.Register
}

// ShiftLeft shifts Vx left by one bit, VF receives the shifted out
// most significant bit (8xyE). Src is decoded for completeness but
// ignored by execution.
type ShiftLeft struct {
	Dst operand.Register
	Src operand.Register
}

// SkipRegistersNotEqual skips the next instruction if Vx differs from Vy (9xy0).
type SkipRegistersNotEqual struct {
	X operand.Register
	Y operand.Register
}

// SetIndex sets the address register I (Annn).
type SetIndex struct {
	Target operand.Address
}

// JumpOffset jumps to the address plus the value of V0 (Bnnn).
type JumpOffset struct {
	Target operand.Address
}

// Random sets Vx to a random byte masked by the immediate (Cxkk).
type Random struct {
	Dst  operand.Register
	Mask operand.Immediate
}

// Draw draws a sprite of Height rows read from the address register at
// the screen position given by Vx and Vy, VF = 1 on pixel collision (Dxyn).
type Draw struct {
	X      operand.Register
	Y      operand.Register
	Height operand.Immediate
}

// SkipPressed skips the next instruction if the key in Vx is pressed (Ex9E).
type SkipPressed struct {
	Key operand.Register
}

// SkipNotPressed skips the next instruction if the key in Vx is not pressed (ExA1).
type SkipNotPressed struct {
	Key operand.Register
}

// ReadDelay sets Vx to the delay timer value (Fx07).
type ReadDelay struct {
	Dst operand.Register
}

// WaitKey suspends execution until a key is pressed and stores it in Vx (Fx0A).
type WaitKey struct {
	Dst operand.Register
}

// SetDelay sets the delay timer to the value of Vx (Fx15).
type SetDelay struct {
	Src operand.Register
}

// SetSound sets the sound timer to the value of Vx (Fx18).
type SetSound struct {
	Src operand.Register
}

// AddIndex adds Vx to the address register I (Fx1E).
type AddIndex struct {
	Src operand.Register
}

// LoadFont points the address register at the font sprite for the hex
// digit in Vx (Fx29).
type LoadFont struct {
	Digit operand.Register
}

// StoreBCD stores the three decimal digits of Vx at I, I+1 and I+2 (Fx33).
type StoreBCD struct {
	Src operand.Register
}

// StoreRegisters stores V0 through Vx to memory starting at I, leaving
// I unchanged (Fx55).
type StoreRegisters struct {
	End operand.Register
}

// LoadRegisters loads V0 through Vx from memory starting at I, leaving
// I unchanged (Fx65).
type LoadRegisters struct {
	End operand.Register
}

func (Sys) operation()                   {}
func (ClearScreen) operation()           {}
func (Return) operation()                {}
func (Jump) operation()                  {}
func (Call) operation()                  {}
func (SkipEqual) operation()             {}
func (SkipNotEqual) operation()          {}
func (SkipRegistersEqual) operation()    {}
func (SetImmediate) operation()          {}
func (AddImmediate) operation()          {}
func (Copy) operation()                  {}
func (Or) operation()                    {}
func (And) operation()                   {}
func (Xor) operation()                   {}
func (AddCarry) operation()              {}
func (SubBorrow) operation()             {}
func (ShiftRight) operation()            {}
func (SubBorrowReverse) operation()      {}
func (ShiftLeft) operation()             {}
func (SkipRegistersNotEqual) operation() {}
func (SetIndex) operation()              {}
func (JumpOffset) operation()            {}
func (Random) operation()                {}
func (Draw) operation()                  {}
func (SkipPressed) operation()           {}
func (SkipNotPressed) operation()        {}
func (ReadDelay) operation()             {}
func (WaitKey) operation()               {}
func (SetDelay) operation()              {}
func (SetSound) operation()              {}
func (AddIndex) operation()              {}
func (LoadFont) operation()              {}
func (StoreBCD) operation()              {}
func (StoreRegisters) operation()        {}
func (LoadRegisters) operation()         {}
