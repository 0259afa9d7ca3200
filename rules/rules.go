// Package rules selects a profile for a file from configured when-clauses
// evaluated against the process environment.
package rules

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Rule binds a profile to a file when its When expression evaluates true.
// When is an expr boolean expression over env, a string map of environment
// variables, e.g. `env["DEPLOY_ENV"] == "staging"`. An empty When always
// matches.
type Rule struct {
	File    string `yaml:"file"`
	Profile string `yaml:"profile"`
	When    string `yaml:"when"`
}

func exprEnv(env map[string]string) map[string]any {
	return map[string]any{"env": env}
}

// Compile type-checks every rule's When expression. A config with a rule
// that does not compile is rejected at load time.
func Compile(rs []Rule) ([]*vm.Program, error) {
	progs := make([]*vm.Program, len(rs))
	for i := range rs {
		if rs[i].When == "" {
			continue
		}
		prog, err := expr.Compile(rs[i].When, expr.Env(exprEnv(nil)), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s -> %s): %w", i, rs[i].File, rs[i].Profile, err)
		}
		progs[i] = prog
	}
	return progs, nil
}

// Select returns the profile of the first rule for fileID whose When
// expression evaluates true under env. Rules whose evaluation errors are
// skipped. No match returns ("", false).
func Select(rs []Rule, fileID string, env map[string]string) (string, bool) {
	progs, err := Compile(rs)
	if err != nil {
		return "", false
	}
	for i := range rs {
		if rs[i].File != fileID {
			continue
		}
		if progs[i] == nil {
			return rs[i].Profile, true
		}
		out, err := expr.Run(progs[i], exprEnv(env))
		if err != nil {
			continue
		}
		if b, ok := out.(bool); ok && b {
			return rs[i].Profile, true
		}
	}
	return "", false
}
