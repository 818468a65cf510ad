package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/oisee/intcode/pkg/cpu"
	"github.com/oisee/intcode/pkg/search"
)

// pairFlags holds --noun and --verb.
type pairFlags struct {
	noun, verb uint64
}

func (p *pairFlags) bind(fs *pflag.FlagSet, noun, verb uint64) {
	fs.Uint64Var(&p.noun, "noun", noun, "Value stored at address 1")
	fs.Uint64Var(&p.verb, "verb", verb, "Value stored at address 2")
}

// apply writes noun and verb into mem, but only those set on the command line.
func (p *pairFlags) apply(fs *pflag.FlagSet, mem cpu.Memory) error {
	if fs.Changed("noun") {
		if err := mem.Store(search.NounAddr, p.noun); err != nil {
			return errors.Wrap(err, "--noun")
		}
	}
	if fs.Changed("verb") {
		if err := mem.Store(search.VerbAddr, p.verb); err != nil {
			return errors.Wrap(err, "--verb")
		}
	}
	return nil
}

func bindSearchFlags(fs *pflag.FlagSet, cfg *search.Config) {
	fs.Uint64Var(&cfg.Target, "target", DefaultTarget, "Value wanted at address 0")
	fs.IntVar(&cfg.Limit, "limit", search.DefaultLimit, "Noun and verb range over [0, limit), at most 100")
	fs.IntVar(&cfg.NumWorkers, "workers", 1, "Number of workers (0 = NumCPU)")
}
