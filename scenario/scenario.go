// Package scenario checks key sequences against expected calculator output.
//
// A scenario file is HCL:
//
//	scenario "addition" {
//	  keys   = "5+3="
//	  expect = "8.0"
//	}
//
// expect is either a string, compared with the result line, or a number,
// compared with the running total. The optional entry attribute checks the
// entry line and latch_equals runs the calculator with "=" latched.
package scenario

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/drake/tally/calc"
)

// ErrBadExpect is returned for an expect value that is neither a string nor a number.
var ErrBadExpect = errors.New("expect must be a string or a number")

// Scenario is one decoded scenario block.
type Scenario struct {
	Name        string    `hcl:"name,label"`
	Keys        string    `hcl:"keys"`
	Expect      cty.Value `hcl:"expect"`
	Entry       *string   `hcl:"entry,optional"`
	LatchEquals bool      `hcl:"latch_equals,optional"`
}

type hclFile struct {
	Scenarios []*Scenario `hcl:"scenario,block"`
}

// Result is the outcome of running one scenario.
type Result struct {
	Name   string
	Passed bool
	Got    string
	Want   string
	Err    error
}

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("FAIL %s: %v", r.Name, r.Err)
	case !r.Passed:
		return fmt.Sprintf("FAIL %s: got %q, want %q", r.Name, r.Got, r.Want)
	}
	return "PASS " + r.Name
}

// Load parses a scenario file.
func Load(path string) ([]*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", path, diags)
	}

	seen := make(map[string]bool, len(parsed.Scenarios))
	for _, s := range parsed.Scenarios {
		if seen[s.Name] {
			return nil, fmt.Errorf("%s: duplicate scenario %q", path, s.Name)
		}
		seen[s.Name] = true
	}
	return parsed.Scenarios, nil
}

// Run presses every non-space character of s.Keys on a fresh calculator
// and compares the outcome.
func Run(s *Scenario) Result {
	res := Result{Name: s.Name}

	var opts []calc.Option
	if s.LatchEquals {
		opts = append(opts, calc.WithEqualsLatch())
	}
	engine := calc.NewEngine(opts...)

	for _, r := range s.Keys {
		if unicode.IsSpace(r) {
			continue
		}
		if err := engine.Press(string(r)); err != nil {
			res.Err = err
			return res
		}
	}
	st := engine.State()

	if s.Entry != nil && st.Entry != *s.Entry {
		res.Got, res.Want = "entry "+st.Entry, "entry "+*s.Entry
		return res
	}

	if s.Expect.IsNull() || !s.Expect.IsKnown() {
		res.Err = ErrBadExpect
		return res
	}
	switch s.Expect.Type() {
	case cty.String:
		res.Got, res.Want = st.Display, s.Expect.AsString()
		res.Passed = res.Got == res.Want

	case cty.Number:
		var want float32
		if err := gocty.FromCtyValue(s.Expect, &want); err != nil {
			res.Err = fmt.Errorf("expect: %w", err)
			return res
		}
		res.Got, res.Want = calc.Format(st.Total), calc.Format(want)
		res.Passed = st.Total == want

	default:
		res.Err = fmt.Errorf("%w, got %s", ErrBadExpect, s.Expect.Type().FriendlyName())
	}
	return res
}

// RunAll runs every scenario in order.
func RunAll(scenarios []*Scenario) []Result {
	results := make([]Result, len(scenarios))
	for i, s := range scenarios {
		results[i] = Run(s)
	}
	return results
}

// Failed counts results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
