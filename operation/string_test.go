package operation

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/retroenv/gochip8/operand"
)

// operand values shared across the text form tests.
var (
	addr = operand.NewAddress(0x2, 0xF, 0x0)
	imm  = operand.NewImmediate(0x2, 0x3)
)

func TestCanonicalTextForms(t *testing.T) {
	tests := []struct {
		expected string
		op       Operation
	}{
		{"SYS 2F0", Sys{Target: addr}},
		{"CLS", ClearScreen{}},
		{"RET", Return{}},
		{"JP 2F0", Jump{Target: addr}},
		{"CALL 2F0", Call{Target: addr}},
		{"SE V1, 23", SkipEqual{X: operand.V1, Value: imm}},
		{"SNE V1, 23", SkipNotEqual{X: operand.V1, Value: imm}},
		{"SE V1, V2", SkipRegistersEqual{X: operand.V1, Y: operand.V2}},
		{"LD V1, 23", SetImmediate{Dst: operand.V1, Value: imm}},
		{"ADD V1, 23", AddImmediate{Dst: operand.V1, Value: imm}},
		{"LD V1, V2", Copy{Dst: operand.V1, Src: operand.V2}},
		{"OR V1, V2", Or{Dst: operand.V1, Src: operand.V2}},
		{"AND V1, V2", And{Dst: operand.V1, Src: operand.V2}},
		{"XOR V1, V2", Xor{Dst: operand.V1, Src: operand.V2}},
		{"ADD V1, V2", AddCarry{Dst: operand.V1, Src: operand.V2}},
		{"SUB V1, V2", SubBorrow{Dst: operand.V1, Src: operand.V2}},
		{"SHR V1, V2", ShiftRight{Dst: operand.V1, Src: operand.V2}},
		{"SUBN V1, V2", SubBorrowReverse{Dst: operand.V1, Src: operand.V2}},
		{"SHL V1, V2", ShiftLeft{Dst: operand.V1, Src: operand.V2}},
		{"SNE V1, V2", SkipRegistersNotEqual{X: operand.V1, Y: operand.V2}},
		{"LD I, 2F0", SetIndex{Target: addr}},
		{"JP V0, 2F0", JumpOffset{Target: addr}},
		{"RND V1, 23", Random{Dst: operand.V1, Mask: imm}},
		{"DRW V1, V2, 05", Draw{X: operand.V1, Y: operand.V2, Height: operand.NewImmediate(0, 5)}},
		{"SKP V1", SkipPressed{Key: operand.V1}},
		{"SKNP V1", SkipNotPressed{Key: operand.V1}},
		{"LD V1, DT", ReadDelay{Dst: operand.V1}},
		{"LD V1, K", WaitKey{Dst: operand.V1}},
		{"LD DT, V1", SetDelay{Src: operand.V1}},
		{"LD ST, V1", SetSound{Src: operand.V1}},
		{"ADD I, V1", AddIndex{Src: operand.V1}},
		{"LD F, V1", LoadFont{Digit: operand.V1}},
		{"LD B, V1", StoreBCD{Src: operand.V1}},
		{"LD [I], V1", StoreRegisters{End: operand.V1}},
		{"LD V1, [I]", LoadRegisters{End: operand.V1}},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.op.String())
		})
	}

	// The text form is unique per variant for identical operand values.
	seen := map[string]Operation{}
	for _, tt := range tests {
		previous, ok := seen[tt.expected]
		assert.False(t, ok, "text form %q already produced by %T", tt.expected, previous)
		seen[tt.expected] = tt.op
	}
}
