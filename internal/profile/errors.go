package profile

import (
	"errors"
	"fmt"
)

// ErrMismatchedProfileText is the single failure kind of the parser. It covers
// text that matches no grammar as well as text that matches a grammar but
// describes an impossible section.
var ErrMismatchedProfileText = errors.New("mismatched profile text")

// MismatchError carries the offending text and a diagnostic reason.
// errors.Is(err, ErrMismatchedProfileText) holds for every MismatchError.
type MismatchError struct {
	Text   string
	Reason string
}

func (e *MismatchError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("mismatched profile text %q", e.Text)
	}
	return fmt.Sprintf("mismatched profile text %q: %s", e.Text, e.Reason)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatchedProfileText
}

func mismatch(text, format string, args ...any) *MismatchError {
	return &MismatchError{Text: text, Reason: fmt.Sprintf(format, args...)}
}
