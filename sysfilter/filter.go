// Package sysfilter compiles the --filter expression that selects
// which systems get mirrored.
package sysfilter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the variable set a filter expression sees for one system,
// e.g. `Name contains "Nintendo" and not HasBIOS`.
type Env struct {
	Name       string
	HasDatfile bool
	HasBIOS    bool
}

// Filter is a compiled selection expression. A nil Filter matches
// everything.
type Filter struct {
	prg *vm.Program
	src string
}

// Compile compiles src as a boolean expression over Env. Empty src
// yields a nil Filter.
func Compile(src string) (*Filter, error) {
	if src == "" {
		return nil, nil
	}
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad filter %q: %w", src, err)
	}
	return &Filter{prg: prg, src: src}, nil
}

// Match evaluates the filter against env.
func (f *Filter) Match(env Env) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	return out.(bool), nil
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.src
}
