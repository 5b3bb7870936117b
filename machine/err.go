package machine

import "errors"

var (
	// ErrStackOverflow indicates a subroutine call beyond the maximum nesting depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow indicates a return with no active stack frame.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrOutOfBounds indicates a memory access beyond the 4KB address space.
	ErrOutOfBounds = errors.New("out of bounds memory access")
	// ErrProgramTooLarge indicates a program image that does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
)
