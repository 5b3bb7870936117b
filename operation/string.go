package operation

import "fmt"

// Every operation has exactly one canonical mnemonic-and-operand text form.
// The forms follow the conventional CHIP-8 assembly syntax: addresses as
// three uppercase hex digits, constants as two, registers as V plus one
// uppercase hex digit.

func (o Sys) String() string {
	return fmt.Sprintf("SYS %s", o.Target)
}

func (ClearScreen) String() string {
	return "CLS"
}

func (Return) String() string {
	return "RET"
}

func (o Jump) String() string {
	return fmt.Sprintf("JP %s", o.Target)
}

func (o Call) String() string {
	return fmt.Sprintf("CALL %s", o.Target)
}

func (o SkipEqual) String() string {
	return fmt.Sprintf("SE %s, %s", o.X, o.Value)
}

func (o SkipNotEqual) String() string {
	return fmt.Sprintf("SNE %s, %s", o.X, o.Value)
}

func (o SkipRegistersEqual) String() string {
	return fmt.Sprintf("SE %s, %s", o.X, o.Y)
}

func (o SetImmediate) String() string {
	return fmt.Sprintf("LD %s, %s", o.Dst, o.Value)
}

func (o AddImmediate) String() string {
	return fmt.Sprintf("ADD %s, %s", o.Dst, o.Value)
}

func (o Copy) String() string {
	return fmt.Sprintf("LD %s, %s", o.Dst, o.Src)
}

func (o Or) String() string {
	return fmt.Sprintf("OR %s, %s", o.Dst, o.Src)
}

func (o And) String() string {
	return fmt.Sprintf("AND %s, %s", o.Dst, o.Src)
}

func (o Xor) String() string {
	return fmt.Sprintf("XOR %s, %s", o.Dst, o.Src)
}

func (o AddCarry) String() string {
	return fmt.Sprintf("ADD %s, %s", o.Dst, o.Src)
}

func (o SubBorrow) String() string {
	return fmt.Sprintf("SUB %s, %s", o.Dst, o.Src)
}

func (o ShiftRight) String() string {
	return fmt.Sprintf("SHR %s, %s", o.Dst, o.Src)
}

func (o SubBorrowReverse) String() string {
	return fmt.Sprintf("SUBN %s, %s", o.Dst, o.Src)
}

func (o ShiftLeft) String() string {
	return fmt.Sprintf("SHL %s, %s", o.Dst, o.Src)
}

func (o SkipRegistersNotEqual) String() string {
	return fmt.Sprintf("SNE %s, %s", o.X, o.Y)
}

func (o SetIndex) String() string {
	return fmt.Sprintf("LD I, %s", o.Target)
}

func (o JumpOffset) String() string {
	return fmt.Sprintf("JP V0, %s", o.Target)
}

func (o Random) String() string {
	return fmt.Sprintf("RND %s, %s", o.Dst, o.Mask)
}

func (o Draw) String() string {
	return fmt.Sprintf("DRW %s, %s, %s", o.X, o.Y, o.Height)
}

func (o SkipPressed) String() string {
	return fmt.Sprintf("SKP %s", o.Key)
}

func (o SkipNotPressed) String() string {
	return fmt.Sprintf("SKNP %s", o.Key)
}

func (o ReadDelay) String() string {
	return fmt.Sprintf("LD %s, DT", o.Dst)
}

func (o WaitKey) String() string {
	return fmt.Sprintf("LD %s, K", o.Dst)
}

func (o SetDelay) String() string {
	return fmt.Sprintf("LD DT, %s", o.Src)
}

func (o SetSound) String() string {
	return fmt.Sprintf("LD ST, %s", o.Src)
}

func (o AddIndex) String() string {
	return fmt.Sprintf("ADD I, %s", o.Src)
}

func (o LoadFont) String() string {
	return fmt.Sprintf("LD F, %s", o.Digit)
}

func (o StoreBCD) String() string {
	return fmt.Sprintf("LD B, %s", o.Src)
}

func (o StoreRegisters) String() string {
	return fmt.Sprintf("LD [I], %s", o.End)
}

func (o LoadRegisters) String() string {
	return fmt.Sprintf("LD %s, [I]", o.End)
}
