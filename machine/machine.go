// Package machine holds the mutable state of one running CHIP-8 program:
// program counter, registers, call stack and the 4KB memory image. The
// state is owned by a single logical thread and is mutated exclusively
// through executor operations and explicit host calls.
package machine

import "fmt"

// Memory layout and machine limits.
const (
	MemorySize   = 0x1000 // 4KB addressable memory
	ProgramStart = 0x200  // conventional program load address
	StackDepth   = 16     // maximum call nesting
	NumRegisters = 16     // general purpose registers V0..VF

	// FontStart is the memory address of the built-in hex digit sprites.
	FontStart = 0x000
	// FontHeight is the number of rows per font sprite.
	FontHeight = 5
)

// font contains the standard sprites for the hex digits 0..F,
// 5 bytes per digit, loaded into the interpreter area of memory.
var font = [16 * FontHeight]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// State is the complete machine state of one running program.
type State struct {
	PC     uint16              // program counter, points at the next instruction word
	SP     uint8               // number of active stack frames
	Stack  [StackDepth]uint16  // call return addresses
	V      [NumRegisters]uint8 // general purpose registers
	I      uint16              // 12-bit address register
	Halted bool

	Memory [MemorySize]byte
}

// New returns a machine state ready to run a program: the program
// counter points at the conventional load address and the font sprites
// are placed in the interpreter area.
func New() *State {
	st := &State{
		PC: ProgramStart,
	}
	copy(st.Memory[FontStart:], font[:])
	return st
}

// LoadProgram copies a program image into memory at the conventional
// load address. Memory beyond the program stays zero-initialized.
func (st *State) LoadProgram(program []byte) error {
	if len(program) > MemorySize-ProgramStart {
		return fmt.Errorf("program size %d exceeds %d bytes: %w",
			len(program), MemorySize-ProgramStart, ErrProgramTooLarge)
	}
	copy(st.Memory[ProgramStart:], program)
	return nil
}

// Fetch reads the instruction word at the current program counter.
func (st *State) Fetch() (hi, lo byte, err error) {
	if int(st.PC)+1 >= MemorySize {
		return 0, 0, fmt.Errorf("program counter %03X: %w", st.PC, ErrOutOfBounds)
	}
	return st.Memory[st.PC], st.Memory[st.PC+1], nil
}

// Push records a return address on the call stack.
func (st *State) Push(address uint16) error {
	if st.SP >= StackDepth {
		return fmt.Errorf("call depth %d: %w", StackDepth, ErrStackOverflow)
	}
	st.Stack[st.SP] = address
	st.SP++
	return nil
}

// Pop removes and returns the most recent return address.
func (st *State) Pop() (uint16, error) {
	if st.SP == 0 {
		return 0, ErrStackUnderflow
	}
	st.SP--
	return st.Stack[st.SP], nil
}

// Slice returns the memory region [address, address+length) for reading
// or writing through the address register.
func (st *State) Slice(address uint16, length int) ([]byte, error) {
	if int(address)+length > MemorySize {
		return nil, fmt.Errorf("memory access %03X+%d: %w", address, length, ErrOutOfBounds)
	}
	return st.Memory[address : int(address)+length], nil
}
