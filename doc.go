// Package lvcipher is a small in-memory workbench for classical ciphers:
// keyed alphabet substitution and columnar route transposition.
//
// 🚀 What is lvcipher?
//
//	A dependency-light, allocation-honest library that brings together:
//		• Alphabets: a fixed, ordered 33-letter Russian alphabet with case folding
//		• Substitution: a keyed shift cipher over that alphabet (modalpha)
//		• Transposition: a table route cipher over any alphabetic text (tableroute)
//		• One error type with a Kind tag for every validation failure (cipherr)
//
// ✨ Why lvcipher?
//
//   - Teaching-friendly – each engine is a few pure functions over runes
//   - Deterministic – the same key and text always give the same output
//   - Immutable engines – safe to share across goroutines without locks
//   - Strict where it matters – decrypt rejects noise, encrypt filters it
//
// These ciphers are historical. They offer no security at all and must never
// protect real data.
//
// Packages:
//
//	alphabet/   — ordered symbol table, reverse index, sanitizing transformers
//	cipherr/    — error kinds, *Error and sentinels for errors.Is
//	modalpha/   — alphabet substitution engine
//	tableroute/ — route transposition engine
//	cmd/lvcipher — command-line front end (encrypt, decrypt, interactive, selftest)
//
// Quick ASCII example of the route table for "HELLO" with 3 columns:
//
//	H E L
//	L O .
//
//	read right-to-left, bottom-to-top: L OE LH → "LOELH"
//
//	go get github.com/katalvlaran/lvcipher
package lvcipher
