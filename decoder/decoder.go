// Package decoder translates raw CHIP-8 instruction words into typed
// operations. Decoding is stateless: the two instruction bytes fully
// determine the result. The address of the word is only used to report
// decode failures.
package decoder

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"

	"github.com/retroenv/gochip8/operand"
	"github.com/retroenv/gochip8/operation"
)

// Decode maps one 2-byte instruction word to an operation.
//
// The word is split into four nibbles a, b, c, d. Dispatch is on the
// opcode family a; the families 0x0, 0x5, 0x8, 0x9, 0xE and 0xF pack
// multiple instruction shapes and are further disambiguated by the
// sub-code nibbles c and d, most specific pattern first. A pattern
// outside the documented set returns an *Error carrying the address
// and the raw nibbles.
func Decode(address uint16, hi, lo byte) (operation.Operation, error) {
	a := hi >> 4
	b := hi & 0x0F
	c := lo >> 4
	d := lo & 0x0F

	// Family 0x0 carries the two screen/stack control codes plus the
	// legacy machine call with any other low 12 bits.
	if a == 0x0 {
		switch {
		case b == 0x0 && c == 0xE && d == 0x0:
			return operation.ClearScreen{}, nil
		case b == 0x0 && c == 0xE && d == 0xE:
			return operation.Return{}, nil
		default:
			return operation.Sys{Target: operand.NewAddress(b, c, d)}, nil
		}
	}

	word := uint16(hi)<<8 | uint16(lo)
	if !documented(word) {
		return nil, newError(address, hi, lo)
	}

	switch a {
	case 0x1:
		return operation.Jump{Target: operand.NewAddress(b, c, d)}, nil
	case 0x2:
		return operation.Call{Target: operand.NewAddress(b, c, d)}, nil
	case 0x3:
		return operation.SkipEqual{X: operand.NewRegister(b), Value: operand.NewImmediate(c, d)}, nil
	case 0x4:
		return operation.SkipNotEqual{X: operand.NewRegister(b), Value: operand.NewImmediate(c, d)}, nil
	case 0x5:
		if d != 0x0 {
			return nil, newError(address, hi, lo)
		}
		return operation.SkipRegistersEqual{X: operand.NewRegister(b), Y: operand.NewRegister(c)}, nil
	case 0x6:
		return operation.SetImmediate{Dst: operand.NewRegister(b), Value: operand.NewImmediate(c, d)}, nil
	case 0x7:
		return operation.AddImmediate{Dst: operand.NewRegister(b), Value: operand.NewImmediate(c, d)}, nil
	case 0x8:
		return decodeRegisterOp(address, hi, lo, b, c, d)
	case 0x9:
		if d != 0x0 {
			return nil, newError(address, hi, lo)
		}
		return operation.SkipRegistersNotEqual{X: operand.NewRegister(b), Y: operand.NewRegister(c)}, nil
	case 0xA:
		return operation.SetIndex{Target: operand.NewAddress(b, c, d)}, nil
	case 0xB:
		return operation.JumpOffset{Target: operand.NewAddress(b, c, d)}, nil
	case 0xC:
		return operation.Random{Dst: operand.NewRegister(b), Mask: operand.NewImmediate(c, d)}, nil
	case 0xD:
		return operation.Draw{X: operand.NewRegister(b), Y: operand.NewRegister(c), Height: operand.NewImmediate(0, d)}, nil
	case 0xE:
		return decodeKeyOp(address, hi, lo, b, c, d)
	default:
		return decodeMiscOp(address, hi, lo, b)
	}
}

// decodeRegisterOp decodes the register-to-register family 0x8,
// disambiguated by nibble d.
func decodeRegisterOp(address uint16, hi, lo, b, c, d byte) (operation.Operation, error) {
	x := operand.NewRegister(b)
	y := operand.NewRegister(c)

	switch d {
	case 0x0:
		return operation.Copy{Dst: x, Src: y}, nil
	case 0x1:
		return operation.Or{Dst: x, Src: y}, nil
	case 0x2:
		return operation.And{Dst: x, Src: y}, nil
	case 0x3:
		return operation.Xor{Dst: x, Src: y}, nil
	case 0x4:
		return operation.AddCarry{Dst: x, Src: y}, nil
	case 0x5:
		return operation.SubBorrow{Dst: x, Src: y}, nil
	case 0x6:
		return operation.ShiftRight{Dst: x, Src: y}, nil
	case 0x7:
		return operation.SubBorrowReverse{Dst: x, Src: y}, nil
	case 0xE:
		return operation.ShiftLeft{Dst: x, Src: y}, nil
	default:
		return nil, newError(address, hi, lo)
	}
}

// decodeKeyOp decodes the key state skip family 0xE, disambiguated by
// the low byte.
func decodeKeyOp(address uint16, hi, lo, b, c, d byte) (operation.Operation, error) {
	switch {
	case c == 0x9 && d == 0xE:
		return operation.SkipPressed{Key: operand.NewRegister(b)}, nil
	case c == 0xA && d == 0x1:
		return operation.SkipNotPressed{Key: operand.NewRegister(b)}, nil
	default:
		return nil, newError(address, hi, lo)
	}
}

// decodeMiscOp decodes the timer, input and memory block family 0xF,
// disambiguated by the low byte.
func decodeMiscOp(address uint16, hi, lo, b byte) (operation.Operation, error) {
	x := operand.NewRegister(b)

	switch lo {
	case 0x07:
		return operation.ReadDelay{Dst: x}, nil
	case 0x0A:
		return operation.WaitKey{Dst: x}, nil
	case 0x15:
		return operation.SetDelay{Src: x}, nil
	case 0x18:
		return operation.SetSound{Src: x}, nil
	case 0x1E:
		return operation.AddIndex{Src: x}, nil
	case 0x29:
		return operation.LoadFont{Digit: x}, nil
	case 0x33:
		return operation.StoreBCD{Src: x}, nil
	case 0x55:
		return operation.StoreRegisters{End: x}, nil
	case 0x65:
		return operation.LoadRegisters{End: x}, nil
	default:
		return nil, newError(address, hi, lo)
	}
}

// documented reports whether the instruction word matches one of the
// documented opcode patterns of its family, using the mask tables of
// the retrogolib CHIP-8 instruction set.
func documented(word uint16) bool {
	family := int(word >> 12)
	for _, op := range chip8.Opcodes[family] {
		if word&op.Info.Mask == op.Info.Value {
			return true
		}
	}
	return false
}
