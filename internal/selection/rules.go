// Package selection decides which composition features and custom branches
// apply to a country. Each rule carries an expr-lang predicate compiled once
// against Env and evaluated per country.
package selection

import (
	"context"
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
)

// Kind tells features and custom branches apart.
type Kind string

const (
	KindFeature Kind = "feature"
	KindBranch  Kind = "branch"
)

// Rule is a named predicate.
type Rule struct {
	Kind    Kind
	Name    string
	When    string // expr source, kept for logging
	program *vm.Program
}

// Rules is a compiled rule set. Rules of the same kind keep their
// declaration order.
type Rules struct {
	rules []*Rule
}

// Selection is the outcome of evaluating a rule set for one country.
type Selection struct {
	Features []string
	Branches []string
}

type rulesFile struct {
	Features []*ruleBlock `hcl:"feature,block"`
	Branches []*ruleBlock `hcl:"branch,block"`
	Remain   hcl.Body     `hcl:",remain"`
}

type ruleBlock struct {
	Name string `hcl:"name,label"`
	When string `hcl:"when,optional"`
}

// Compile compiles every rule. An empty predicate always holds.
func Compile(rules []*Rule) (*Rules, error) {
	seen := make(map[Kind]map[string]bool)
	for _, r := range rules {
		if seen[r.Kind] == nil {
			seen[r.Kind] = make(map[string]bool)
		}
		if seen[r.Kind][r.Name] {
			return nil, fmt.Errorf("%s %q declared twice", r.Kind, r.Name)
		}
		seen[r.Kind][r.Name] = true

		src := r.When
		if src == "" {
			src = "true"
		}
		prog, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile %s %q: %w", r.Kind, r.Name, err)
		}
		r.program = prog
	}
	return &Rules{rules: rules}, nil
}

// LoadFile reads and compiles a rules document from disk.
func LoadFile(ctx context.Context, path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return Parse(ctx, data, path)
}

// Parse decodes and compiles a rules document:
//
//	feature "democracy" {
//	  when = "Government == \"democratic\" && HasTargets(\"contain\")"
//	}
//
//	branch "mefo_bills" {
//	  when = "Tag == \"GER\""
//	}
func Parse(ctx context.Context, data []byte, name string) (*Rules, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", name, diags)
	}
	var root rulesFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rules file %s: %w", name, diags)
	}

	rules := make([]*Rule, 0, len(root.Features)+len(root.Branches))
	for _, b := range root.Features {
		rules = append(rules, &Rule{Kind: KindFeature, Name: b.Name, When: b.When})
	}
	for _, b := range root.Branches {
		rules = append(rules, &Rule{Kind: KindBranch, Name: b.Name, When: b.When})
	}

	compiled, err := Compile(rules)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", name, err)
	}
	ctxlog.FromContext(ctx).Debug("Selection rules loaded.", "file", name, "features", len(root.Features), "branches", len(root.Branches))
	return compiled, nil
}

// Default returns the built-in rule set.
func Default(ctx context.Context) (*Rules, error) {
	return Parse(ctx, []byte(DefaultRules), "default_rules.hcl")
}

// Names returns the names of the rules of kind k in declaration order.
func (r *Rules) Names(k Kind) []string {
	var out []string
	for _, rule := range r.rules {
		if rule.Kind == k {
			out = append(out, rule.Name)
		}
	}
	return out
}

// Select evaluates every rule against env. A rule whose predicate fails to
// run is logged and treated as not matching.
func (r *Rules) Select(ctx context.Context, env Env) Selection {
	logger := ctxlog.FromContext(ctx)

	var sel Selection
	for _, rule := range r.rules {
		result, err := vm.Run(rule.program, env)
		if err != nil {
			logger.Warn("Selection rule failed.", "kind", rule.Kind, "rule", rule.Name, "tag", env.Tag, "error", err)
			continue
		}
		if match, ok := result.(bool); !ok || !match {
			continue
		}
		switch rule.Kind {
		case KindFeature:
			sel.Features = append(sel.Features, rule.Name)
		case KindBranch:
			sel.Branches = append(sel.Branches, rule.Name)
		}
	}
	logger.Debug("Selection evaluated.", "tag", env.Tag, "features", sel.Features, "branches", sel.Branches)
	return sel
}
