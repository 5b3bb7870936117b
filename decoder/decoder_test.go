package decoder

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/retroenv/gochip8/machine"
	"github.com/retroenv/gochip8/operand"
	"github.com/retroenv/gochip8/operation"
)

func TestDecodeLegalPatterns(t *testing.T) {
	tests := []struct {
		name     string
		hi, lo   byte
		expected operation.Operation
	}{
		{"sys", 0x01, 0x23, operation.Sys{Target: operand.NewAddress(0x1, 0x2, 0x3)}},
		{"cls", 0x00, 0xE0, operation.ClearScreen{}},
		{"ret", 0x00, 0xEE, operation.Return{}},
		{"jp", 0x12, 0xF0, operation.Jump{Target: operand.NewAddress(0x2, 0xF, 0x0)}},
		{"call", 0x22, 0xF0, operation.Call{Target: operand.NewAddress(0x2, 0xF, 0x0)}},
		{"se immediate", 0x31, 0x23, operation.SkipEqual{X: operand.V1, Value: operand.NewImmediate(0x2, 0x3)}},
		{"sne immediate", 0x41, 0x23, operation.SkipNotEqual{X: operand.V1, Value: operand.NewImmediate(0x2, 0x3)}},
		{"se registers", 0x51, 0x20, operation.SkipRegistersEqual{X: operand.V1, Y: operand.V2}},
		{"ld immediate", 0x61, 0x23, operation.SetImmediate{Dst: operand.V1, Value: operand.NewImmediate(0x2, 0x3)}},
		{"add immediate", 0x71, 0x23, operation.AddImmediate{Dst: operand.V1, Value: operand.NewImmediate(0x2, 0x3)}},
		{"ld register", 0x81, 0x20, operation.Copy{Dst: operand.V1, Src: operand.V2}},
		{"or", 0x81, 0x21, operation.Or{Dst: operand.V1, Src: operand.V2}},
		{"and", 0x81, 0x22, operation.And{Dst: operand.V1, Src: operand.V2}},
		{"xor", 0x81, 0x23, operation.Xor{Dst: operand.V1, Src: operand.V2}},
		{"add carry", 0x81, 0x24, operation.AddCarry{Dst: operand.V1, Src: operand.V2}},
		{"sub borrow", 0x81, 0x25, operation.SubBorrow{Dst: operand.V1, Src: operand.V2}},
		{"shr", 0x81, 0x26, operation.ShiftRight{Dst: operand.V1, Src: operand.V2}},
		{"subn", 0x81, 0x27, operation.SubBorrowReverse{Dst: operand.V1, Src: operand.V2}},
		{"shl", 0x81, 0x2E, operation.ShiftLeft{Dst: operand.V1, Src: operand.V2}},
		{"sne registers", 0x91, 0x20, operation.SkipRegistersNotEqual{X: operand.V1, Y: operand.V2}},
		{"ld index", 0xA2, 0xF0, operation.SetIndex{Target: operand.NewAddress(0x2, 0xF, 0x0)}},
		{"jp offset", 0xB2, 0xF0, operation.JumpOffset{Target: operand.NewAddress(0x2, 0xF, 0x0)}},
		{"rnd", 0xC1, 0x23, operation.Random{Dst: operand.V1, Mask: operand.NewImmediate(0x2, 0x3)}},
		{"drw", 0xD1, 0x25, operation.Draw{X: operand.V1, Y: operand.V2, Height: operand.NewImmediate(0x0, 0x5)}},
		{"skp", 0xE1, 0x9E, operation.SkipPressed{Key: operand.V1}},
		{"sknp", 0xE1, 0xA1, operation.SkipNotPressed{Key: operand.V1}},
		{"ld delay", 0xF1, 0x07, operation.ReadDelay{Dst: operand.V1}},
		{"ld key", 0xF1, 0x0A, operation.WaitKey{Dst: operand.V1}},
		{"set delay", 0xF1, 0x15, operation.SetDelay{Src: operand.V1}},
		{"set sound", 0xF1, 0x18, operation.SetSound{Src: operand.V1}},
		{"add index", 0xF1, 0x1E, operation.AddIndex{Src: operand.V1}},
		{"ld font", 0xF1, 0x29, operation.LoadFont{Digit: operand.V1}},
		{"ld bcd", 0xF1, 0x33, operation.StoreBCD{Src: operand.V1}},
		{"store registers", 0xF1, 0x55, operation.StoreRegisters{End: operand.V1}},
		{"load registers", 0xF1, 0x65, operation.LoadRegisters{End: operand.V1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Decode(machine.ProgramStart, tt.hi, tt.lo)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestDecodeUnknownPatterns(t *testing.T) {
	tests := []struct {
		name   string
		hi, lo byte
	}{
		{"family 5 bad subcode", 0x51, 0x21},
		{"family 8 bad subcode", 0x81, 0x28},
		{"family 8 subcode F", 0x81, 0x2F},
		{"family 9 bad subcode", 0x91, 0x21},
		{"family E bad subcode", 0xE1, 0x00},
		{"family F bad subcode", 0xF1, 0x34},
		{"family F subcode FF", 0xF1, 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Decode(0x234, tt.hi, tt.lo)
			assert.Nil(t, op)

			var decodeErr *Error
			assert.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, uint16(0x234), decodeErr.Address)
			assert.Equal(t, tt.hi, decodeErr.Hi)
			assert.Equal(t, tt.lo, decodeErr.Lo)
		})
	}
}

// Family 0x0 disambiguates on the low nibbles: the two exact patterns
// win over the legacy machine call.
func TestDecodeFamilyZeroTieBreak(t *testing.T) {
	op, err := Decode(machine.ProgramStart, 0x00, 0xE0)
	assert.NoError(t, err)
	assert.Equal(t, operation.ClearScreen{}, op)

	op, err = Decode(machine.ProgramStart, 0x00, 0xEE)
	assert.NoError(t, err)
	assert.Equal(t, operation.Return{}, op)

	op, err = Decode(machine.ProgramStart, 0x00, 0xE1)
	assert.NoError(t, err)
	assert.Equal(t, operation.Sys{Target: operand.NewAddress(0x0, 0xE, 0x1)}, op)

	op, err = Decode(machine.ProgramStart, 0x02, 0x46)
	assert.NoError(t, err)
	assert.Equal(t, operation.Sys{Target: operand.NewAddress(0x2, 0x4, 0x6)}, op)
}

func TestDecodeErrorReporting(t *testing.T) {
	_, err := Decode(0xABC, 0xF5, 0x34)

	var decodeErr *Error
	assert.True(t, errors.As(err, &decodeErr))

	a, b, c, d := decodeErr.Nibbles()
	assert.Equal(t, byte(0xF), a)
	assert.Equal(t, byte(0x5), b)
	assert.Equal(t, byte(0x3), c)
	assert.Equal(t, byte(0x4), d)
	assert.Equal(t, "unknown opcode at ABC: F534", decodeErr.Error())
}

// Decoding a pattern and rendering its canonical text stays stable.
func TestDecodeTextRoundTrip(t *testing.T) {
	tests := []struct {
		hi, lo   byte
		expected string
	}{
		{0x00, 0xE0, "CLS"},
		{0x12, 0xF0, "JP 2F0"},
		{0x61, 0x23, "LD V1, 23"},
		{0x81, 0x24, "ADD V1, V2"},
		{0xD1, 0x25, "DRW V1, V2, 05"},
		{0xF1, 0x65, "LD V1, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			op, err := Decode(machine.ProgramStart, tt.hi, tt.lo)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, op.String())
		})
	}
}
