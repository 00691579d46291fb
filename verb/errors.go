package verb

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every error of the validator.
var ErrValidation = errors.New("invalid verb record")

// ChainError reports a verb that is a link in the middle of an auxiliary
// chain. Its record is built from the lexical verb below it.
type ChainError struct {
	Msg string
}

func (err ChainError) Error() string {
	return err.Msg
}

// ----------------------------

type AuxChainError struct {
	Msg  string
	Rule string
}

func (err AuxChainError) Error() string {
	return fmt.Sprintf("%s (%s)", err.Msg, err.Rule)
}

func (err AuxChainError) Unwrap() error {
	return ErrValidation
}

// ----------------------------

type MatrixError struct {
	Msg  string
	Rule string
}

func (err MatrixError) Error() string {
	return fmt.Sprintf("%s (%s)", err.Msg, err.Rule)
}

func (err MatrixError) Unwrap() error {
	return ErrValidation
}

// ----------------------------

type EmbeddedClauseError struct {
	Msg  string
	Rule string
}

func (err EmbeddedClauseError) Error() string {
	return fmt.Sprintf("%s (%s)", err.Msg, err.Rule)
}

func (err EmbeddedClauseError) Unwrap() error {
	return ErrValidation
}

// ----------------------------

// ArgumentError reports an argument only licensed by the passive voice
// attached to a verb that is not passive.
type ArgumentError struct {
	Msg  string
	Prep string
}

func (err ArgumentError) Error() string {
	return fmt.Sprintf("%s (%s)", err.Msg, err.Prep)
}

func (err ArgumentError) Unwrap() error {
	return ErrValidation
}

// Kind returns a short name of the class of err, used to aggregate
// statistics.
func Kind(err error) string {
	var (
		chainErr    ChainError
		auxErr      AuxChainError
		matrixErr   MatrixError
		embeddedErr EmbeddedClauseError
		argErr      ArgumentError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &chainErr):
		return "chain"
	case errors.As(err, &auxErr):
		return "aux-chain"
	case errors.As(err, &matrixErr):
		return "matrix"
	case errors.As(err, &embeddedErr):
		return "embedded-clause"
	case errors.As(err, &argErr):
		return "argument"
	}

	return "other"
}
