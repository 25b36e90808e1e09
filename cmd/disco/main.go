package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/thelolagemann/disco/internal/cpu"
	"github.com/thelolagemann/disco/internal/interrupts"
	"github.com/thelolagemann/disco/internal/mmu"
	"github.com/thelolagemann/disco/internal/types"
	"github.com/thelolagemann/disco/pkg/log"
	"github.com/thelolagemann/disco/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The program file to load, optionally compressed (.gz, .xz, .zst, .lz4, .br, .zip, .7z)")
	offset := flag.Uint("offset", 0x0000, "The address to load the program at")
	pc := flag.Uint("pc", 0x0100, "The initial program counter")
	sp := flag.Uint("sp", 0xFFFE, "The initial stack pointer")
	ime := flag.Bool("ime", false, "Start with interrupts enabled")
	steps := flag.Uint64("steps", 0, "The number of instructions to execute, 0 runs until interrupted")
	debug := flag.Bool("debug", false, "Trace every executed instruction")
	flag.Parse()

	logger := log.NewWithOutput(os.Stderr, *debug)
	os.Exit(run(logger, config{
		rom:    *romFile,
		offset: uint16(*offset),
		pc:     uint16(*pc),
		sp:     uint16(*sp),
		ime:    *ime,
		steps:  *steps,
		debug:  *debug,
	}))
}

type config struct {
	rom        string
	offset     uint16
	pc, sp     uint16
	ime, debug bool
	steps      uint64
}

// run executes the program described by cfg and returns the exit status.
func run(logger log.Logger, cfg config) int {
	if cfg.rom == "" {
		logger.Errorf("no program given, use -rom")
		return 2
	}
	program, err := utils.LoadFile(cfg.rom)
	if err != nil {
		logger.Errorf("loading program: %v", err)
		return 1
	}

	b := mmu.NewBus()
	if err := b.Load(cfg.offset, program); err != nil {
		logger.Errorf("loading program: %v", err)
		return 1
	}

	opts := []cpu.Opt{
		cpu.WithLogger(logger),
		cpu.WithPC(cfg.pc),
		cpu.WithSP(cfg.sp),
		cpu.WithIME(cfg.ime),
	}
	if cfg.debug {
		opts = append(opts, cpu.Debug())
	}
	c := cpu.NewCPU(b, opts...)

	var output strings.Builder
	attachSerial(b, c.Interrupts(), &output)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.steps > 0 {
		err = runSteps(ctx, c, cfg.steps)
	} else {
		err = c.Run(ctx)
	}

	if output.Len() > 0 {
		logger.Infof("serial output: %q", output.String())
	}
	logger.Infof("stopped at %04X after %d cycles, memory checksum %016x", c.PC, c.Cycles(), b.Checksum())

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return 0
	case errors.Is(err, cpu.ErrUnimplementedOpcode):
		logger.Errorf("halting on %v", err)
	default:
		logger.Errorf("run failed: %v", err)
	}
	return 1
}

// runSteps executes n instructions, stopping early when ctx is done.
func runSteps(ctx context.Context, c *cpu.CPU, n uint64) error {
	for i := uint64(0); i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// attachSerial intercepts transfers started through the serial
// control register, collecting every byte written to SB. Transfers
// complete immediately, as if no other device was connected.
func attachSerial(b *mmu.Bus, irq *interrupts.Controller, output *strings.Builder) {
	b.ReserveAddress(types.SC, func(v byte) byte {
		if v&types.Bit7 != 0 {
			output.WriteByte(b.Get(types.SB))
			b.Set(types.SB, 0xFF)
			irq.Request(interrupts.Serial)
			return v &^ types.Bit7
		}
		return v
	})
}
