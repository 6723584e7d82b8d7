// File: tableroute/example_test.go
package tableroute_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcipher/cipherr"
	"github.com/katalvlaran/lvcipher/tableroute"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Encrypt / Decrypt
////////////////////////////////////////////////////////////////////////////////

// ExampleCipher_Encrypt walks the HELLO table with three columns:
//
//	H E L
//	L O .
//
// Read right-to-left, bottom-to-top: "L", "OE", "LH".
func ExampleCipher_Encrypt() {
	c, _ := tableroute.New(3)
	ct, _ := c.Encrypt("Hello")
	pt, _ := c.Decrypt(ct)
	fmt.Println(ct)
	fmt.Println(pt)
	// Output:
	// LOELH
	// HELLO
}

////////////////////////////////////////////////////////////////////////////////
// Example: Table
////////////////////////////////////////////////////////////////////////////////

// ExampleCipher_Table prints the working grid for a longer message.
func ExampleCipher_Table() {
	c, _ := tableroute.New(4)
	tbl, _ := c.Table("hello, world")
	fmt.Print(tbl)
	// Output:
	// H E L L
	// O W O R
	// L D . .
}

////////////////////////////////////////////////////////////////////////////////
// Example: errors
////////////////////////////////////////////////////////////////////////////////

// ExampleCipher_Encrypt_tooShort shows the length rule: the text must be
// strictly longer than the column count.
func ExampleCipher_Encrypt_tooShort() {
	c, _ := tableroute.New(5)
	_, err := c.Encrypt("WORLD")
	fmt.Println(errors.Is(err, cipherr.ErrTextTooShort))
	// Output:
	// true
}
