package clause

import (
	"errors"
	"fmt"
)

// NoInformationError is returned when no verb of the sentence yields a
// valid record. Drops tells why each verb was rejected.
type NoInformationError struct {
	Msg   string
	Drops []Drop
}

func (err NoInformationError) Error() string {
	return err.Msg
}

type MultipleMatrixError struct {
	Msg     string
	Indexes []int
}

func (err MultipleMatrixError) Error() string {
	return fmt.Sprintf("%s: %v", err.Msg, err.Indexes)
}

type NoMatrixError struct {
	Msg string
}

func (err NoMatrixError) Error() string {
	return err.Msg
}

type NotFoundError struct {
	Msg   string
	Index int
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", err.Msg, err.Index)
}

// Kind returns a short name of the class of a sentence level error.
func Kind(err error) string {
	var (
		noInfoErr   NoInformationError
		multipleErr MultipleMatrixError
		noMatrixErr NoMatrixError
		notFoundErr NotFoundError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &noInfoErr):
		return "no-information"
	case errors.As(err, &multipleErr):
		return "multiple-matrix"
	case errors.As(err, &noMatrixErr):
		return "no-matrix"
	case errors.As(err, &notFoundErr):
		return "not-found"
	}

	return "other"
}
