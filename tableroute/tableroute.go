// SPDX-License-Identifier: MIT

package tableroute

import (
	"unicode/utf8"

	"github.com/katalvlaran/lvcipher/cipherr"
)

// Operation tags used as *cipherr.Error context.
const (
	opNew     = "tableroute.New"
	opEncrypt = "tableroute.Encrypt"
	opDecrypt = "tableroute.Decrypt"
	opTable   = "tableroute.Table"
)

// Cipher is a route transposition engine with a fixed column count. Build it
// with New; the zero value has no columns and rejects every call with
// ErrInvalidColumnCount.
type Cipher struct {
	columns int
}

// New returns an engine that lays text out in columns columns.
//
// Errors: cipherr.ErrInvalidColumnCount when columns ≤ 0.
func New(columns int) (*Cipher, error) {
	if columns <= 0 {
		return nil, cipherr.Errorf(opNew, cipherr.InvalidColumnCount, "got %d", columns)
	}

	return &Cipher{columns: columns}, nil
}

// Columns returns the column count.
func (c *Cipher) Columns() int {
	return c.columns
}

// Encrypt fills the table row-major and reads it along the route.
//
// Errors: cipherr.ErrEmptyPlaintext, cipherr.ErrNoLettersInPlaintext,
// cipherr.ErrTextTooShort.
// Complexity: O(n).
func (c *Cipher) Encrypt(text string) (string, error) {
	clean, err := c.validText(opEncrypt, text)
	if err != nil {
		return "", err
	}
	t := newTable(len(clean), c.columns)
	t.write(t.rowOrder(), clean)

	return t.read(t.routeOrder()), nil
}

// Decrypt fills the table along the route and reads it row-major.
// The input is sanitized exactly like Encrypt's.
//
// Errors: cipherr.ErrEmptyPlaintext, cipherr.ErrNoLettersInPlaintext,
// cipherr.ErrTextTooShort.
// Complexity: O(n).
func (c *Cipher) Decrypt(text string) (string, error) {
	clean, err := c.validText(opDecrypt, text)
	if err != nil {
		return "", err
	}
	t := newTable(len(clean), c.columns)
	t.write(t.routeOrder(), clean)

	return t.read(t.rowOrder()), nil
}

// Table returns the filled encryption table for text, for display.
// It validates text the same way Encrypt does.
func (c *Cipher) Table(text string) (*Table, error) {
	clean, err := c.validText(opTable, text)
	if err != nil {
		return nil, err
	}
	t := newTable(len(clean), c.columns)
	t.write(t.rowOrder(), clean)

	return t, nil
}

// validText sanitizes text and enforces the length rule.
//
// Implementation:
//   - Stage 0: columns ≤ 0 (zero value) → InvalidColumnCount.
//   - Stage 1: "" → EmptyPlaintext.
//   - Stage 2: keep letters only, uppercase; nothing left → NoLettersInPlaintext.
//   - Stage 3: rune count ≤ columns → TextTooShort.
func (c *Cipher) validText(op, text string) ([]rune, error) {
	if c.columns <= 0 {
		return nil, cipherr.Errorf(op, cipherr.InvalidColumnCount, "got %d; engine not built with New", c.columns)
	}
	if text == "" {
		return nil, cipherr.New(op, cipherr.EmptyPlaintext)
	}
	clean := Sanitize(text)
	if clean == "" {
		return nil, cipherr.New(op, cipherr.NoLettersInPlaintext)
	}
	if n := utf8.RuneCountInString(clean); n <= c.columns {
		return nil, cipherr.Errorf(op, cipherr.TextTooShort, "length %d, columns %d", n, c.columns)
	}

	return []rune(clean), nil
}
