// SPDX-License-Identifier: MIT
// Package: lvcipher/cipherr
//
// errors.go — the Kind taxonomy, the *Error type and package-level sentinels.
//
// Error policy:
//   - Engines return *Error values only; never panic on user input.
//   - Callers MUST branch with errors.Is(err, ErrX) or KindOf(err).
//   - (*Error).Is matches on Kind alone, so an error built with operation
//     context and a detailed reason still satisfies errors.Is(err, ErrX).
//   - Messages are stable: "<op>: <reason>", where reason defaults to the
//     canonical text of the Kind.

package cipherr

import (
	"errors"
	"fmt"
)

// Kind classifies a cipher failure.
type Kind uint8

const (
	// Unknown is the zero Kind; KindOf returns it for foreign errors and nil.
	Unknown Kind = iota

	// EmptyKey: the substitution key string is empty.
	EmptyKey
	// InvalidKeyCharacter: the substitution key holds a symbol outside the alphabet.
	InvalidKeyCharacter
	// WeakKey: every symbol of the normalized substitution key is the same.
	WeakKey
	// EmptyPlaintext: there is nothing to encrypt (empty input, or nothing
	// survives substitution filtering).
	EmptyPlaintext
	// EmptyCiphertext: substitution decrypt got an empty string.
	EmptyCiphertext
	// InvalidCiphertext: substitution decrypt got a symbol that is not an
	// uppercase alphabet letter.
	InvalidCiphertext
	// InvalidColumnCount: the route column count is not strictly positive.
	InvalidColumnCount
	// NoLettersInPlaintext: no letter survives route sanitization.
	NoLettersInPlaintext
	// TextTooShort: sanitized route text is not longer than the column count.
	TextTooShort
)

// kindNames and kindReasons are indexed by Kind.
var (
	kindNames = [...]string{
		Unknown:              "Unknown",
		EmptyKey:             "EmptyKey",
		InvalidKeyCharacter:  "InvalidKeyCharacter",
		WeakKey:              "WeakKey",
		EmptyPlaintext:       "EmptyPlaintext",
		EmptyCiphertext:      "EmptyCiphertext",
		InvalidCiphertext:    "InvalidCiphertext",
		InvalidColumnCount:   "InvalidColumnCount",
		NoLettersInPlaintext: "NoLettersInPlaintext",
		TextTooShort:         "TextTooShort",
	}
	kindReasons = [...]string{
		Unknown:              "unknown cipher error",
		EmptyKey:             "empty key",
		InvalidKeyCharacter:  "invalid key character",
		WeakKey:              "weak key",
		EmptyPlaintext:       "empty plaintext",
		EmptyCiphertext:      "empty ciphertext",
		InvalidCiphertext:    "invalid ciphertext",
		InvalidColumnCount:   "column count must be positive",
		NoLettersInPlaintext: "text contains no letters",
		TextTooShort:         "text length must be greater than the column count",
	}
)

// String returns the Kind name, e.g. "WeakKey".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Reason returns the canonical human-readable reason for k.
func (k Kind) Reason() string {
	if int(k) < len(kindReasons) {
		return kindReasons[k]
	}
	return kindReasons[Unknown]
}

// Error is the only error type produced by the cipher engines.
//   - Kind is the tag callers branch on.
//   - Op names the failing operation ("modalpha.New", "tableroute.Decrypt");
//     empty for the package sentinels.
//   - Reason is the human-readable message.
type Error struct {
	Kind   Kind
	Op     string
	Reason string
}

// Compile-time assertion: *Error implements error.
var _ error = (*Error)(nil)

// Error implements the error interface.
func (e *Error) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = e.Kind.Reason()
	}
	if e.Op == "" {
		return "cipher: " + reason
	}
	return e.Op + ": " + reason
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels, one per Kind, for errors.Is.
var (
	ErrEmptyKey             = &Error{Kind: EmptyKey}
	ErrInvalidKeyCharacter  = &Error{Kind: InvalidKeyCharacter}
	ErrWeakKey              = &Error{Kind: WeakKey}
	ErrEmptyPlaintext       = &Error{Kind: EmptyPlaintext}
	ErrEmptyCiphertext      = &Error{Kind: EmptyCiphertext}
	ErrInvalidCiphertext    = &Error{Kind: InvalidCiphertext}
	ErrInvalidColumnCount   = &Error{Kind: InvalidColumnCount}
	ErrNoLettersInPlaintext = &Error{Kind: NoLettersInPlaintext}
	ErrTextTooShort         = &Error{Kind: TextTooShort}
)

// New returns an *Error of the given kind with the canonical reason.
func New(op string, kind Kind) *Error {
	return &Error{Kind: kind, Op: op, Reason: kind.Reason()}
}

// Errorf returns an *Error whose reason is the canonical text of kind
// followed by a formatted detail: "<op>: <reason>: <detail>".
//
// Example:
//
//	cipherr.Errorf("modalpha.New", cipherr.InvalidKeyCharacter, "%q at position %d", r, i)
func Errorf(op string, kind Kind, format string, args ...interface{}) *Error {
	detail := fmt.Sprintf(format, args...)
	return &Error{Kind: kind, Op: op, Reason: kind.Reason() + ": " + detail}
}

// KindOf extracts the Kind of the first *Error in err's chain.
// It returns Unknown for nil or for errors that carry no *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
