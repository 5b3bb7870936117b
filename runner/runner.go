// Package runner drives the fetch-decode-execute loop of one CHIP-8
// program. Each iteration polls the timers, decodes the instruction
// word at the program counter and executes it; instruction throughput
// and timer decay stay decoupled. The loop owns the machine state
// exclusively and stops between instructions on context cancellation,
// on a breakpoint, or on a fatal program error.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"

	"github.com/retroenv/gochip8/decoder"
	"github.com/retroenv/gochip8/executor"
	"github.com/retroenv/gochip8/machine"
	"github.com/retroenv/gochip8/timer"
)

// ErrBreakpoint is returned by Run when the program counter reaches a
// breakpoint address. The machine state is left intact so that the
// caller can inspect it and call Run again to continue.
var ErrBreakpoint = errors.New("breakpoint reached")

// Options control the runner behavior.
type Options struct {
	// Logger receives the instruction trace and decode diagnostics.
	// A nil logger is replaced by a default one.
	Logger *log.Logger

	// SkipUnknownOpcodes makes the runner step over undecodable
	// instruction words instead of halting the program. The failure is
	// still logged with its address and raw nibbles.
	SkipUnknownOpcodes bool

	// Breakpoints contains program addresses that stop the run loop
	// before the instruction at the address executes.
	Breakpoints set.Set[uint16]
}

// Runner executes a program against its machine state and timers.
type Runner struct {
	state  *machine.State
	timers *timer.Timers

	display executor.Display
	input   executor.Input

	logger      *log.Logger
	skipUnknown bool
	breakpoints set.Set[uint16]
}

// New returns a runner for the given machine state and collaborators.
func New(st *machine.State, timers *timer.Timers,
	display executor.Display, input executor.Input, options Options) *Runner {
	logger := options.Logger
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}

	return &Runner{
		state:       st,
		timers:      timers,
		display:     display,
		input:       input,
		logger:      logger,
		skipUnknown: options.SkipUnknownOpcodes,
		breakpoints: options.Breakpoints,
	}
}

// Run executes instructions until the context is cancelled, a
// breakpoint is reached, the machine halts or a fatal program error
// occurs. Errors carry the failing address and are returned to the
// caller; the host process is never aborted.
func (r *Runner) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if r.state.Halted {
			return nil
		}
		if r.breakpoints != nil && r.breakpoints.Contains(r.state.PC) {
			return fmt.Errorf("address %03X: %w", r.state.PC, ErrBreakpoint)
		}

		if err := r.Step(ctx); err != nil {
			return err
		}
	}
}

// Step polls the timers and executes the single instruction word at the
// program counter. It ignores breakpoints, which lets a host continue
// past one before resuming Run.
func (r *Runner) Step(ctx context.Context) error {
	r.timers.Update()

	hi, lo, err := r.state.Fetch()
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}

	op, err := decoder.Decode(r.state.PC, hi, lo)
	if err != nil {
		if !r.skipUnknown {
			return fmt.Errorf("decoding instruction: %w", err)
		}
		r.logger.Warn("Skipping unknown opcode",
			log.Hex("address", r.state.PC),
			log.Hex("hi", hi),
			log.Hex("lo", lo))
		r.state.PC += 2
		return nil
	}

	r.logger.Debug("Executing",
		log.Hex("address", r.state.PC),
		log.Stringer("op", op))

	outcome, err := executor.Execute(op, r.state, r.timers, r.display, r.input)
	if err != nil {
		return fmt.Errorf("executing instruction: %w", err)
	}
	if !outcome.AwaitingKey {
		return nil
	}

	key, err := r.input.WaitKey(ctx)
	if err != nil {
		return fmt.Errorf("waiting for key press: %w", err)
	}
	executor.Resume(r.state, outcome.KeyDst, key)
	return nil
}
