// Package cipherr defines the single error type shared by the cipher engines.
//
// Every validation failure in lvcipher is an *Error carrying a Kind tag, the
// operation that failed and a human-readable reason. Callers branch on the
// kind, never on the message:
//
//	c, err := modalpha.New(key)
//	if errors.Is(err, cipherr.ErrWeakKey) {
//		// ask for a different key
//	}
//
// or, when several kinds are handled at once:
//
//	switch cipherr.KindOf(err) {
//	case cipherr.EmptyPlaintext, cipherr.NoLettersInPlaintext:
//		...
//	}
//
// Errors:
//
//   - ErrEmptyKey, ErrInvalidKeyCharacter, ErrWeakKey: substitution key rejected.
//   - ErrEmptyPlaintext: nothing to encrypt (either engine).
//   - ErrEmptyCiphertext, ErrInvalidCiphertext: substitution decrypt input rejected.
//   - ErrInvalidColumnCount: route key is not a positive integer.
//   - ErrNoLettersInPlaintext, ErrTextTooShort: route text rejected.
package cipherr
