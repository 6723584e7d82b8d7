// SPDX-License-Identifier: MIT

package modalpha

import (
	"github.com/katalvlaran/lvcipher/alphabet"
	"github.com/katalvlaran/lvcipher/cipherr"
)

// validKey checks and normalizes a key string.
//
// Implementation:
//   - Stage 1: reject "" with EmptyKey.
//   - Stage 2: require every rune to be an alphabet letter in either case
//     (InvalidKeyCharacter), folding to uppercase. Runes are taken as given;
//     a combining mark is an invalid character.
//   - Stage 3: reject a key whose letters are all identical (WeakKey).
//     A single letter counts as all identical.
func validKey(abc *alphabet.Alphabet, key string) (string, error) {
	if key == "" {
		return "", cipherr.New(opNew, cipherr.EmptyKey)
	}
	src := []rune(key)
	for i, r := range src {
		if !abc.Contains(r) {
			return "", cipherr.Errorf(opNew, cipherr.InvalidKeyCharacter, "%q at position %d", r, i)
		}
		src[i] = abc.ToUpper(r)
	}
	if isWeak(src) {
		return "", cipherr.New(opNew, cipherr.WeakKey)
	}

	return string(src), nil
}

// isWeak reports whether every rune in key equals the first one.
// key is never empty here.
func isWeak(key []rune) bool {
	for _, r := range key[1:] {
		if r != key[0] {
			return false
		}
	}
	return true
}

// validOpenText filters text through the alphabet and returns its indices.
func validOpenText(abc *alphabet.Alphabet, text string) ([]int, error) {
	clean := abc.Sanitize(text)
	if clean == "" {
		return nil, cipherr.New(opEncrypt, cipherr.EmptyPlaintext)
	}

	return abc.Encode(clean), nil
}

// validCipherText requires text to be uppercase alphabet letters only and
// returns its indices. Nothing is filtered or normalized; position counts
// runes of text as given.
func validCipherText(abc *alphabet.Alphabet, text string) ([]int, error) {
	if text == "" {
		return nil, cipherr.New(opDecrypt, cipherr.EmptyCiphertext)
	}
	out := make([]int, 0, len(text))
	pos := 0
	for _, r := range text {
		i, ok := abc.Index(r)
		if !ok {
			return nil, cipherr.Errorf(opDecrypt, cipherr.InvalidCiphertext, "%q at position %d", r, pos)
		}
		out = append(out, i)
		pos++
	}

	return out, nil
}
