package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/oisee/intcode/pkg/cpu"
	"github.com/oisee/intcode/pkg/inst"
	"github.com/oisee/intcode/pkg/loader"
	"github.com/oisee/intcode/pkg/result"
	"github.com/oisee/intcode/pkg/search"
)

// Puzzle parameters for the two parts of the solve command.
const (
	DefaultNoun   = 12
	DefaultVerb   = 2
	DefaultTarget = 19690720
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "intcode",
		Short:        "Run intcode programs and search their noun/verb inputs",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRunCmd(), newExecCmd(), newSearchCmd(), newDisasmCmd(), newSolveCmd())
	return rootCmd
}

// run command
func newRunCmd() *cobra.Command {
	var p pairFlags
	var trace bool

	cmd := &cobra.Command{
		Use:   "run [program]",
		Short: "Run a program and print its final memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := p.apply(cmd.Flags(), mem); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var tf cpu.TraceFunc
			if trace {
				tf = func(cursor int, instr inst.Instruction) {
					fmt.Fprintf(out, "%04d  %s\n", cursor, instr)
				}
			}

			m := cpu.New(mem, tf)
			final, err := m.Run()
			if err != nil {
				return err
			}
			if trace {
				fmt.Fprintf(out, "halted after %d instructions\n", m.Steps())
			}
			fmt.Fprintln(out, formatMemory(final))
			return nil
		},
	}
	p.bind(cmd.Flags(), DefaultNoun, DefaultVerb)
	cmd.Flags().BoolVar(&trace, "trace", false, "Print every instruction as it executes")
	return cmd
}

// exec command
func newExecCmd() *cobra.Command {
	var p pairFlags

	cmd := &cobra.Command{
		Use:   "exec [program]",
		Short: "Run a program with a noun and verb and print address 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			output, err := search.Execute(mem, p.noun, p.verb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	p.bind(cmd.Flags(), DefaultNoun, DefaultVerb)
	return cmd
}

// search command
func newSearchCmd() *cobra.Command {
	var cfg search.Config
	var all, verbose bool
	var output string

	cmd := &cobra.Command{
		Use:   "search [program]",
		Short: "Find the noun and verb that produce a target output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cfg.Resolve()
			if err != nil {
				return errors.Wrap(err, "--limit")
			}
			mem, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}

			logger := log.New(io.Discard, "", log.LstdFlags)
			if verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			}
			logger.Printf("program: %d cells", len(mem))
			logger.Printf("target: %d, space: %d pairs, workers: %d",
				cfg.Target, search.PairCount(cfg.Limit), cfg.NumWorkers)

			start := time.Now()
			rep := result.Report{Target: cfg.Target, Limit: cfg.Limit}
			out := cmd.OutOrStdout()

			if all {
				table, err := search.SearchAll(mem, cfg)
				if err != nil {
					return err
				}
				rep.Solutions = table.Solutions()
				for _, s := range rep.Solutions {
					fmt.Fprintf(out, "noun=%d verb=%d answer=%d\n", s.Noun, s.Verb, s.Answer)
				}
				logger.Printf("found %d solutions in %s", len(rep.Solutions), time.Since(start).Round(time.Microsecond))
			} else {
				sol, pool, err := search.Run(mem, cfg)
				checked, _ := pool.Stats()
				logger.Printf("checked %d pairs in %s", checked, time.Since(start).Round(time.Microsecond))
				if err != nil {
					return err
				}
				rep.Solutions = []result.Solution{sol}
				fmt.Fprintln(out, sol.Answer)
			}

			if output != "" {
				if err := writeReport(output, rep); err != nil {
					return err
				}
				logger.Printf("written to %s", output)
			}
			return nil
		},
	}
	bindSearchFlags(cmd.Flags(), &cfg)
	cmd.Flags().BoolVar(&all, "all", false, "List every matching pair instead of the first")
	cmd.Flags().StringVar(&output, "output", "", "Output JSON report path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	return cmd
}

// disasm command
func newDisasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm [program]",
		Short: "Print a disassembly of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			for _, line := range inst.Disassemble(mem) {
				fmt.Fprintf(cmd.OutOrStdout(), "%04d  %s\n", line.Addr, line.Text)
			}
			return nil
		},
	}
}

// solve command
func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [program]",
		Short: "Print both puzzle answers: address 0 for 12/2, and the noun/verb for 19690720",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := loader.LoadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			part1, err := search.Execute(mem, DefaultNoun, DefaultVerb)
			fmt.Fprintln(out, "Part 1", resultOrError(part1, err))

			part2, err := search.Answer(mem, DefaultTarget)
			fmt.Fprintln(out, "Part 2", resultOrError(part2, err))
			return nil
		},
	}
}

func resultOrError(v uint64, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return strconv.FormatUint(v, 10)
}

func formatMemory(mem cpu.Memory) string {
	parts := make([]string, len(mem))
	for i, v := range mem {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, ",")
}

func writeReport(path string, rep result.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := result.WriteJSON(f, rep); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
