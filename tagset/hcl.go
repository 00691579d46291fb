package tagset

import (
	"fmt"
	"os"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclTagsetFile is the top-level structure of a tagset file. Omitted
// sections keep the values of the English tagset.
//
//	name = "brown"
//
//	category "verb" { pattern = "^(VB|BE|HV|DO)" }
//	category "noun" { pattern = english.noun }
//	tense "past"    { pattern = "^VBD" }
//	aux "have"      { pattern = "^HV" }
//
//	relations {
//	  subject = "nsubj"
//	}
type hclTagsetFile struct {
	Name            string        `hcl:"name"`
	Categories      []*hclRule    `hcl:"category,block"`
	Tenses          []*hclRule    `hcl:"tense,block"`
	Auxiliaries     []*hclRule    `hcl:"aux,block"`
	Relations       *hclRelations `hcl:"relations,block"`
	DoLemma         *string       `hcl:"do_lemma,optional"`
	Complementizers []string      `hcl:"complementizers,optional"`
	NonPrepositions []string      `hcl:"non_prepositions,optional"`
	FreeChoice      *string       `hcl:"free_choice,optional"`
}

type hclRule struct {
	Name    string `hcl:"name,label"`
	Pattern string `hcl:"pattern"`
}

type hclRelations struct {
	Subject           *string `hcl:"subject,optional"`
	Object            *string `hcl:"object,optional"`
	Predicate         *string `hcl:"predicate,optional"`
	Root              *string `hcl:"root,optional"`
	VerbChain         *string `hcl:"verb_chain,optional"`
	ClausalComplement *string `hcl:"clausal_complement,optional"`
}

// evalContext exposes the English patterns to tagset files as the `english`
// object, so that a tagset can reuse them.
func evalContext() *hcl.EvalContext {
	english := map[string]cty.Value{}
	for c, p := range englishPatterns {
		english[string(c)] = cty.StringVal(p)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"english": cty.ObjectVal(english),
		},
	}
}

// Load reads a tagset from an HCL file.
func Load(path string) (*Tagset, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	return Parse(src, path)
}

// Parse decodes an HCL tagset. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Tagset, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse tagset %s: %w", filename, diags)
	}

	var f hclTagsetFile
	diags = gohcl.DecodeBody(file.Body, evalContext(), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode tagset %s: %w", filename, diags)
	}

	return f.tagset()
}

func (f *hclTagsetFile) tagset() (*Tagset, error) {
	ts := English()
	ts.Name = f.Name

	if len(f.Categories) > 0 {
		rules, err := categoryRules(f.Categories)
		if err != nil {
			return nil, err
		}
		ts.Categories = rules
	}

	if len(f.Tenses) > 0 {
		ts.Tenses = nil
		for _, r := range f.Tenses {
			t := Tense(r.Name)
			if !t.In(Past, Gerund, PastPart, Present) {
				return nil, fmt.Errorf("unknown tense %q", r.Name)
			}
			re, err := compile(r)
			if err != nil {
				return nil, err
			}
			ts.Tenses = append(ts.Tenses, Rule[Tense]{Value: t, Pattern: re})
		}
	}

	if len(f.Auxiliaries) > 0 {
		ts.Auxiliaries = nil
		for _, r := range f.Auxiliaries {
			a := Aux(r.Name)
			if a != Have && a != Be && a != Modal {
				return nil, fmt.Errorf("unknown auxiliary %q", r.Name)
			}
			re, err := compile(r)
			if err != nil {
				return nil, err
			}
			ts.Auxiliaries = append(ts.Auxiliaries, Rule[Aux]{Value: a, Pattern: re})
		}
	}

	if f.Relations != nil {
		set(&ts.Relations.Subject, f.Relations.Subject)
		set(&ts.Relations.Object, f.Relations.Object)
		set(&ts.Relations.Predicate, f.Relations.Predicate)
		set(&ts.Relations.Root, f.Relations.Root)
		set(&ts.Relations.VerbChain, f.Relations.VerbChain)
		set(&ts.Relations.ClausalComplement, f.Relations.ClausalComplement)
	}

	set(&ts.DoLemma, f.DoLemma)
	set(&ts.FreeChoice, f.FreeChoice)

	if f.Complementizers != nil {
		ts.Complementizers = f.Complementizers
	}

	if f.NonPrepositions != nil {
		ts.NonPrepositions = f.NonPrepositions
	}

	return ts, nil
}

// categoryRules keeps the English rules of the categories the file does not
// mention, after the ones it does.
func categoryRules(blocks []*hclRule) ([]Rule[Category], error) {
	known := map[Category]bool{}
	for _, c := range Categories() {
		known[c] = true
	}

	var rules []Rule[Category]
	seen := map[Category]bool{}
	for _, r := range blocks {
		c := Category(r.Name)
		if !known[c] {
			return nil, fmt.Errorf("unknown category %q", r.Name)
		}
		if seen[c] {
			return nil, fmt.Errorf("category %q defined twice", r.Name)
		}
		re, err := compile(r)
		if err != nil {
			return nil, err
		}
		seen[c] = true
		rules = append(rules, Rule[Category]{Value: c, Pattern: re})
	}

	for _, c := range Categories() {
		if !seen[c] {
			rules = append(rules, Rule[Category]{Value: c, Pattern: regexp.MustCompile(englishPatterns[c])})
		}
	}

	return rules, nil
}

func compile(r *hclRule) (*regexp.Regexp, error) {
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern for %q: %w", r.Name, err)
	}
	return re, nil
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
