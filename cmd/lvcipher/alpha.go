package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var alphaCmd = &cobra.Command{
	Use:   "alpha",
	Short: "Keyed substitution over the Russian alphabet",
	Long: `Keyed substitution over the 33-letter Russian alphabet.

Encrypt drops everything that is not a Russian letter and uppercases the rest.
Decrypt accepts uppercase Russian letters only and rejects anything else.

Examples:
  lvcipher alpha encrypt --key ключ --text "Привет, мир!"
  lvcipher alpha decrypt --key КЛЮЧ --text ЪЬЖЩПЮКАЫ`,
}

var alphaEncryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt text with the substitution cipher",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAlpha(cmd, false)
	},
}

var alphaDecryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt text with the substitution cipher",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAlpha(cmd, true)
	},
}

func runAlpha(cmd *cobra.Command, decrypt bool) error {
	key, _ := cmd.Flags().GetString("key")
	c, err := newAlpha(key, cmd.Flags().Changed("key"))
	if err != nil {
		return err
	}
	text, err := inputFromFlags(cmd)
	if err != nil {
		return err
	}
	out, err := apply(c, decrypt, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// inputFromFlags resolves --text/--file/stdin for cmd.
func inputFromFlags(cmd *cobra.Command) (string, error) {
	text, _ := cmd.Flags().GetString("text")
	file, _ := cmd.Flags().GetString("file")
	return readText(text, cmd.Flags().Changed("text"), file, cmd.InOrStdin())
}

// addInputFlags registers --text and --file on cmd.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", "input text (default: stdin)")
	cmd.Flags().StringP("file", "f", "", "read input text from file")
}

func init() {
	alphaCmd.PersistentFlags().StringP("key", "k", "", "substitution key (Russian letters, default from config)")
	for _, c := range []*cobra.Command{alphaEncryptCmd, alphaDecryptCmd} {
		addInputFlags(c)
		alphaCmd.AddCommand(c)
	}
	rootCmd.AddCommand(alphaCmd)
}
