// Package executor applies decoded operations to machine state. Each
// call executes exactly one operation and advances the program counter
// by one instruction word unless the operation redirects control flow.
// Side effects that leave the core (drawing, key queries, randomness)
// go through the Display and Input collaborator interfaces; waiting for
// a key is reported as a suspended outcome instead of blocking.
package executor

import (
	"context"
	"fmt"

	"github.com/retroenv/gochip8/machine"
	"github.com/retroenv/gochip8/operand"
	"github.com/retroenv/gochip8/operation"
	"github.com/retroenv/gochip8/timer"
)

// opcodeSize is the size of one instruction word in bytes.
const opcodeSize = 2

// Display receives sprite draw requests from the executor.
type Display interface {
	// Clear resets all pixels.
	Clear()
	// Draw XORs a sprite onto the screen at the given origin and
	// reports whether any set pixel was unset by the draw.
	Draw(x, y uint8, sprite []byte) (collision bool)
}

// Input answers the key and randomness queries the executor consumes.
type Input interface {
	// Pressed reports whether the given key (0..15) is currently held.
	Pressed(key uint8) bool
	// WaitKey blocks until any key is pressed and reports which.
	WaitKey(ctx context.Context) (key uint8, err error)
	// Random returns a uniformly distributed random byte.
	Random() uint8
}

// Outcome reports how execution of one operation left the machine.
type Outcome struct {
	// AwaitingKey is set when a wait-for-key operation suspended the
	// program. The program counter has not advanced; the driver must
	// obtain a key and call Resume.
	AwaitingKey bool
	// KeyDst is the register receiving the key once the program resumes.
	KeyDst operand.Register
}

// Execute applies one operation to the machine state.
func Execute(op operation.Operation, st *machine.State, timers *timer.Timers,
	display Display, input Input) (Outcome, error) {
	switch o := op.(type) {
	case operation.Sys:
		// Legacy machine call, unused by conforming programs.
	case operation.ClearScreen:
		display.Clear()
	case operation.Return:
		address, err := st.Pop()
		if err != nil {
			return Outcome{}, fmt.Errorf("return at %03X: %w", st.PC, err)
		}
		st.PC = address
		return Outcome{}, nil
	case operation.Jump:
		st.PC = o.Target.Uint16()
		return Outcome{}, nil
	case operation.Call:
		if err := st.Push(st.PC + opcodeSize); err != nil {
			return Outcome{}, fmt.Errorf("call at %03X: %w", st.PC, err)
		}
		st.PC = o.Target.Uint16()
		return Outcome{}, nil
	case operation.SkipEqual:
		if st.V[o.X] == o.Value.Uint8() {
			st.PC += opcodeSize
		}
	case operation.SkipNotEqual:
		if st.V[o.X] != o.Value.Uint8() {
			st.PC += opcodeSize
		}
	case operation.SkipRegistersEqual:
		if st.V[o.X] == st.V[o.Y] {
			st.PC += opcodeSize
		}
	case operation.SetImmediate:
		st.V[o.Dst] = o.Value.Uint8()
	case operation.AddImmediate:
		st.V[o.Dst] += o.Value.Uint8()
	case operation.Copy:
		st.V[o.Dst] = st.V[o.Src]
	case operation.Or:
		st.V[o.Dst] |= st.V[o.Src]
	case operation.And:
		st.V[o.Dst] &= st.V[o.Src]
	case operation.Xor:
		st.V[o.Dst] ^= st.V[o.Src]
	case operation.AddCarry:
		executeAddCarry(st, o)
	case operation.SubBorrow:
		executeSub(st, o.Dst, st.V[o.Dst], st.V[o.Src])
	case operation.ShiftRight:
		carry := st.V[o.Dst] & 0x01
		st.V[o.Dst] >>= 1
		st.V[operand.VF] = carry
	case operation.SubBorrowReverse:
		executeSub(st, o.Dst, st.V[o.Src], st.V[o.Dst])
	case operation.ShiftLeft:
		carry := st.V[o.Dst] >> 7
		st.V[o.Dst] <<= 1
		st.V[operand.VF] = carry
	case operation.SkipRegistersNotEqual:
		if st.V[o.X] != st.V[o.Y] {
			st.PC += opcodeSize
		}
	case operation.SetIndex:
		st.I = o.Target.Uint16()
	case operation.JumpOffset:
		st.PC = o.Target.Uint16() + uint16(st.V[operand.V0])
		return Outcome{}, nil
	case operation.Random:
		st.V[o.Dst] = input.Random() & o.Mask.Uint8()
	case operation.Draw:
		if err := executeDraw(st, display, o); err != nil {
			return Outcome{}, err
		}
	case operation.SkipPressed:
		if input.Pressed(st.V[o.Key] & 0x0F) {
			st.PC += opcodeSize
		}
	case operation.SkipNotPressed:
		if !input.Pressed(st.V[o.Key] & 0x0F) {
			st.PC += opcodeSize
		}
	case operation.ReadDelay:
		st.V[o.Dst] = timers.Delay
	case operation.WaitKey:
		// Suspend without advancing the program counter; Resume
		// completes the operation once the driver has a key.
		return Outcome{AwaitingKey: true, KeyDst: o.Dst}, nil
	case operation.SetDelay:
		timers.Delay = st.V[o.Src]
	case operation.SetSound:
		timers.Sound = st.V[o.Src]
	case operation.AddIndex:
		st.I = (st.I + uint16(st.V[o.Src])) % machine.MemorySize
	case operation.LoadFont:
		st.I = machine.FontStart + uint16(st.V[o.Digit]&0x0F)*machine.FontHeight
	case operation.StoreBCD:
		if err := executeStoreBCD(st, o); err != nil {
			return Outcome{}, err
		}
	case operation.StoreRegisters:
		mem, err := st.Slice(st.I, int(o.End)+1)
		if err != nil {
			return Outcome{}, fmt.Errorf("storing registers at %03X: %w", st.PC, err)
		}
		copy(mem, st.V[:int(o.End)+1])
	case operation.LoadRegisters:
		mem, err := st.Slice(st.I, int(o.End)+1)
		if err != nil {
			return Outcome{}, fmt.Errorf("loading registers at %03X: %w", st.PC, err)
		}
		copy(st.V[:int(o.End)+1], mem)
	default:
		return Outcome{}, fmt.Errorf("operation %T: %w", op, ErrUnsupportedOperation)
	}

	st.PC += opcodeSize
	return Outcome{}, nil
}

// Resume completes a suspended wait-for-key operation: the reported key
// is stored in the destination register and the program counter moves
// past the wait instruction.
func Resume(st *machine.State, dst operand.Register, key uint8) {
	st.V[dst] = key & 0x0F
	st.PC += opcodeSize
}

func executeAddCarry(st *machine.State, o operation.AddCarry) {
	sum := uint16(st.V[o.Dst]) + uint16(st.V[o.Src])
	st.V[o.Dst] = uint8(sum)
	if sum > 0xFF {
		st.V[operand.VF] = 1
	} else {
		st.V[operand.VF] = 0
	}
}

// executeSub writes minuend-subtrahend to dst. VF is set to 1 when no
// borrow occurred, the inverted flag sense of the original hardware.
func executeSub(st *machine.State, dst operand.Register, minuend, subtrahend uint8) {
	st.V[dst] = minuend - subtrahend
	if minuend >= subtrahend {
		st.V[operand.VF] = 1
	} else {
		st.V[operand.VF] = 0
	}
}

func executeDraw(st *machine.State, display Display, o operation.Draw) error {
	height := int(o.Height.Uint8())
	sprite, err := st.Slice(st.I, height)
	if err != nil {
		return fmt.Errorf("reading sprite at %03X: %w", st.PC, err)
	}
	if display.Draw(st.V[o.X], st.V[o.Y], sprite) {
		st.V[operand.VF] = 1
	} else {
		st.V[operand.VF] = 0
	}
	return nil
}

func executeStoreBCD(st *machine.State, o operation.StoreBCD) error {
	mem, err := st.Slice(st.I, 3)
	if err != nil {
		return fmt.Errorf("storing BCD at %03X: %w", st.PC, err)
	}
	value := st.V[o.Src]
	mem[0] = value / 100
	mem[1] = value / 10 % 10
	mem[2] = value % 10
	return nil
}
