// Package modalpha implements a keyed alphabet substitution cipher over the
// 33-letter Russian alphabet (alphabet.Russian).
//
// 🚀 How it works
//
//	Every letter becomes its index in the alphabet. The key is a word over the
//	same alphabet, repeated under the text:
//
//	  encrypt: c[i] = (p[i] + k[i mod len(k)]) mod 33
//	  decrypt: p[i] = (c[i] − k[i mod len(k)] + 33) mod 33
//
// ✨ Contract
//
//   - New validates the key: non-empty, alphabet letters only (any case),
//     and not weak. A key is weak when all of its letters are the same,
//     which includes every one-letter key.
//   - Encrypt is forgiving: it drops everything that is not an alphabet
//     letter and uppercases the rest. Only an input with no letters left fails.
//   - Decrypt is strict: ciphertext must consist solely of uppercase alphabet
//     letters. Lowercase or foreign characters are an error, never skipped.
//
// ⚙️ Usage:
//
//	c, err := modalpha.New("ключ")
//	if err != nil {
//		return err
//	}
//	ct, err := c.Encrypt("Привет, мир!")  // "ЪЬЖЩПЮКАЫ"
//	pt, err := c.Decrypt(ct)              // "ПРИВЕТМИР"
//
// Errors (all *cipherr.Error, match with errors.Is):
//
//   - cipherr.ErrEmptyKey, cipherr.ErrInvalidKeyCharacter, cipherr.ErrWeakKey from New.
//   - cipherr.ErrEmptyPlaintext from Encrypt.
//   - cipherr.ErrEmptyCiphertext, cipherr.ErrInvalidCiphertext from Decrypt.
//
// A *Cipher is immutable after New and safe for concurrent use.
package modalpha
