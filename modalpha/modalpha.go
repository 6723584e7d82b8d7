// SPDX-License-Identifier: MIT

package modalpha

import (
	"github.com/katalvlaran/lvcipher/alphabet"
	"github.com/katalvlaran/lvcipher/cipherr"
)

// Operation tags used as *cipherr.Error context.
const (
	opNew     = "modalpha.New"
	opEncrypt = "modalpha.Encrypt"
	opDecrypt = "modalpha.Decrypt"
)

// Cipher is a substitution engine bound to one key. Build it with New; the
// zero value has no key and rejects every call with ErrEmptyKey.
//   - abc is the fixed alphabet (alphabet.Russian).
//   - key holds the validated key as alphabet indices, len(key) ≥ 2.
type Cipher struct {
	abc *alphabet.Alphabet
	key []int
}

// New validates key and returns an engine for it.
// The key may mix cases; it is folded to uppercase before use.
//
// Errors: cipherr.ErrEmptyKey, cipherr.ErrInvalidKeyCharacter, cipherr.ErrWeakKey.
// Complexity: O(len(key)).
func New(key string) (*Cipher, error) {
	abc := alphabet.Russian
	valid, err := validKey(abc, key)
	if err != nil {
		return nil, err
	}

	return &Cipher{abc: abc, key: abc.Encode(valid)}, nil
}

// Encrypt filters text down to alphabet letters, uppercases them and shifts
// each one forward by the key letter under it.
//
// Errors: cipherr.ErrEmptyPlaintext when no letter survives filtering.
// Complexity: O(len(text)).
func (c *Cipher) Encrypt(text string) (string, error) {
	if !c.ready() {
		return "", cipherr.Errorf(opEncrypt, cipherr.EmptyKey, "engine not built with New")
	}
	work, err := validOpenText(c.abc, text)
	if err != nil {
		return "", err
	}
	n, m := c.abc.Size(), len(c.key)
	for i := range work {
		work[i] = (work[i] + c.key[i%m]) % n
	}

	return c.abc.Decode(work), nil
}

// Decrypt shifts each ciphertext letter back by the key letter under it.
// The input is not filtered: it must be uppercase alphabet letters only.
//
// Errors: cipherr.ErrEmptyCiphertext, cipherr.ErrInvalidCiphertext.
// Complexity: O(len(text)).
func (c *Cipher) Decrypt(text string) (string, error) {
	if !c.ready() {
		return "", cipherr.Errorf(opDecrypt, cipherr.EmptyKey, "engine not built with New")
	}
	work, err := validCipherText(c.abc, text)
	if err != nil {
		return "", err
	}
	n, m := c.abc.Size(), len(c.key)
	for i := range work {
		work[i] = (work[i] - c.key[i%m] + n) % n
	}

	return c.abc.Decode(work), nil
}

// Key returns the normalized (uppercase) key, or "" for the zero value.
func (c *Cipher) Key() string {
	if !c.ready() {
		return ""
	}
	return c.abc.Decode(c.key)
}

// ready reports whether c was built by New.
func (c *Cipher) ready() bool {
	return c.abc != nil && len(c.key) > 0
}

// KeyLen returns the key length in letters.
func (c *Cipher) KeyLen() int {
	return len(c.key)
}

// Sanitize returns text the way Encrypt sees it before shifting: alphabet
// letters only, uppercase. Decrypt(Encrypt(t)) == Sanitize(t) for every t
// that Encrypt accepts.
func Sanitize(text string) string {
	return alphabet.Russian.Sanitize(text)
}
