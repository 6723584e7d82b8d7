// Package tableroute implements the table route transposition cipher.
//
// 🚀 How it works
//
//	The sanitized text is written into a table with a fixed number of
//	columns, row by row, left to right. The last row may be short; its empty
//	tail cells are placeholders and are never emitted. The ciphertext is read
//	column by column from the rightmost column to the leftmost, bottom to top
//	inside each column:
//
//	  columns = 3, text = "HELLO"
//
//	    H E L        read: col 2 ↑  L
//	    L O .              col 1 ↑  O E
//	                       col 0 ↑  L H     → "LOELH"
//
//	Decrypt rebuilds the same table shape from (length, columns) alone,
//	writes the ciphertext along the read route and reads it back row-major.
//
// ✨ Contract
//
//   - Both directions sanitize the same way: every non-letter is dropped
//     (unicode.IsLetter, runes taken as given) and the rest is uppercased.
//   - The sanitized length must be strictly greater than the column count.
//   - Decrypt(Encrypt(t)) == Sanitize(t).
//
// Complexity:
//
//   - Encrypt, Decrypt: O(n) time and O(rows×columns) memory, n = text length.
//
// Errors (all *cipherr.Error, match with errors.Is):
//
//   - cipherr.ErrInvalidColumnCount from New.
//   - cipherr.ErrEmptyPlaintext, cipherr.ErrNoLettersInPlaintext and
//     cipherr.ErrTextTooShort from Encrypt and Decrypt.
//
// A *Cipher is immutable after New; every call builds its own Table, so a
// single engine is safe for concurrent use.
package tableroute
