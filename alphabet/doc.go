// Package alphabet provides fixed, ordered symbol tables for substitution
// ciphers, with a reverse index and case folding.
//
// What:
//
//   - Alphabet maps each symbol to a unique zero-based index and back.
//   - Russian is the 33-letter uppercase Russian alphabet, Ё included and
//     placed after Е: АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ.
//   - Lowercase forms (а..я, ё) fold to their uppercase symbol.
//   - Sanitize filters arbitrary text down to uppercase alphabet symbols
//     through a golang.org/x/text transform chain (remove → upper).
//
// Input is not normalized:
//
//	A decomposed "Ё" (Е + U+0308) is two runes. The combining mark is not
//	an alphabet symbol, so Sanitize drops it and keeps Е. Callers that want
//	composed letters normalize before calling.
//
// Complexity:
//
//   - Index, Rune, Contains, ToUpper: O(1).
//   - Encode, Decode, Sanitize: O(n) in the input length.
//
// An Alphabet is immutable once built and safe for concurrent use.
package alphabet
