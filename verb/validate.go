package verb

import (
	"slices"

	"github.com/revelaction/vclause/tagset"
)

const (
	msgAuxChain = "invalid aux chain"
	msgMatrix   = "invalid matrix clause"
	msgEmbedded = "invalid embedded clause"
	msgArgument = "passive-only argument outside passive voice"
)

// Validator holds the lexical sets of the well-formedness constraints.
type Validator struct {
	// complementizers not allowed in a matrix clause
	MatrixComplementizers []string

	// complementizers not allowed with a to-infinitive
	InfinitiveComplementizers []string

	// complementizer requiring a to-infinitive (for him to go)
	ForComplementizer string

	// prepositions only licensed by the passive voice
	PassivePreps []string
}

// NewValidator returns the English validator. Matrix clauses reject the
// complementizers of the tagset.
func NewValidator(ts *tagset.Tagset) *Validator {
	return &Validator{
		MatrixComplementizers:     ts.Complementizers,
		InfinitiveComplementizers: []string{"that", "if", "like"},
		ForComplementizer:         "for",
		PassivePreps:              []string{"by"},
	}
}

// Validate runs the constraints in order and returns the first violation.
func (v *Validator) Validate(r *Record) error {
	if err := v.auxChain(r); err != nil {
		return err
	}

	if r.Matrix {
		if err := v.matrix(r); err != nil {
			return err
		}
	} else {
		if err := v.embedded(r); err != nil {
			return err
		}
	}

	return v.arguments(r)
}

func (v *Validator) auxChain(r *Record) error {
	if r.Be != nil && !r.Tense.In(tagset.PastPart, tagset.Gerund, tagset.Nil) {
		return AuxChainError{Msg: msgAuxChain, Rule: "be-chain"}
	}

	if r.Have != nil {
		// bare have (have to) keeps a nil form below it
		if r.Be != nil {
			if !r.Be.In(tagset.PastPart, tagset.Nil) {
				return AuxChainError{Msg: msgAuxChain, Rule: "have-chain"}
			}
		} else if !r.Tense.In(tagset.PastPart, tagset.Nil) {
			return AuxChainError{Msg: msgAuxChain, Rule: "have-chain"}
		}
	}

	if r.Modal != nil && r.belowModal() != tagset.Nil {
		return AuxChainError{Msg: msgAuxChain, Rule: "modal-chain"}
	}

	return nil
}

func (v *Validator) matrix(r *Record) error {
	switch {
	case r.Subject == nil:
		return MatrixError{Msg: msgMatrix, Rule: "no subject"}
	case r.To:
		return MatrixError{Msg: msgMatrix, Rule: "to-infinitive"}
	case r.Complementizer != nil && slices.Contains(v.MatrixComplementizers, *r.Complementizer):
		return MatrixError{Msg: msgMatrix, Rule: "complementizer " + *r.Complementizer}
	}

	return nil
}

func (v *Validator) embedded(r *Record) error {
	if r.To && r.belowModal() != tagset.Nil {
		return EmbeddedClauseError{Msg: msgEmbedded, Rule: "finite to-infinitive"}
	}

	if !r.Tense.In(tagset.Nil, tagset.Gerund, tagset.PastPart) && r.Subject == nil {
		return EmbeddedClauseError{Msg: msgEmbedded, Rule: "finite without subject"}
	}

	if r.Complementizer != nil {
		c := *r.Complementizer
		if r.To && slices.Contains(v.InfinitiveComplementizers, c) {
			return EmbeddedClauseError{Msg: msgEmbedded, Rule: "complementizer " + c + " with to-infinitive"}
		}

		if c == v.ForComplementizer && !r.To {
			return EmbeddedClauseError{Msg: msgEmbedded, Rule: "complementizer " + c + " without to-infinitive"}
		}
	}

	return nil
}

func (v *Validator) arguments(r *Record) error {
	passive := r.Be != nil && r.Tense == tagset.PastPart
	for _, p := range r.Preps {
		if slices.Contains(v.PassivePreps, p.Label) && !passive {
			return ArgumentError{Msg: msgArgument, Prep: p.Label}
		}
	}

	return nil
}

// belowModal returns the form of the first link below a modal: the have
// auxiliary, else the be auxiliary, else the verb itself.
func (r *Record) belowModal() tagset.Tense {
	switch {
	case r.Have != nil:
		return *r.Have
	case r.Be != nil:
		return *r.Be
	}

	return r.Tense
}
