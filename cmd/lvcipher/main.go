// lvcipher is a command-line front end for the lvcipher engines.
//
// It wraps the two classical ciphers:
//   - alpha: keyed substitution over the 33-letter Russian alphabet
//   - route: table route transposition with a column-count key
//
// Usage:
//
//	# Substitution
//	lvcipher alpha encrypt --key КЛЮЧ --text "Привет, мир!"
//	lvcipher alpha decrypt --key КЛЮЧ --text ЪЬЖЩПЮКАЫ
//
//	# Route transposition, printing the table
//	lvcipher route encrypt --columns 3 --show-table --text HELLO
//	echo LOELH | lvcipher route decrypt --columns 3
//
//	# Menu-driven session
//	lvcipher interactive route --columns 4
//
//	# Built-in scenarios
//	lvcipher selftest
//
// Defaults for --key and --columns can come from lvcipher.yaml or from the
// LVCIPHER_ALPHA_KEY and LVCIPHER_ROUTE_COLUMNS environment variables.
package main

func main() {
	Execute()
}
