package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Table route transposition keyed by a column count",
	Long: `Table route transposition keyed by a column count.

The text is written row by row into a table with --columns columns and read
column by column, right to left, bottom to top. Non-letters are dropped and
letters uppercased in both directions. The text must have more letters than
there are columns.

Examples:
  lvcipher route encrypt --columns 3 --text HELLO --show-table
  lvcipher route decrypt --columns 3 --text LOELH`,
}

var routeEncryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt text with the route cipher",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoute(cmd, false)
	},
}

var routeDecryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt text with the route cipher",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoute(cmd, true)
	},
}

func runRoute(cmd *cobra.Command, decrypt bool) error {
	columns, _ := cmd.Flags().GetInt("columns")
	c, err := newRoute(columns, cmd.Flags().Changed("columns"))
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

	show := cfg.Output.ShowTable
	if cmd.Flags().Changed("show-table") {
		show, _ = cmd.Flags().GetBool("show-table")
	}
	if show {
		// the table always shows the plaintext layout
		plain := out
		if !decrypt {
			plain = text
		}
		tbl, err := c.Table(plain)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), tbl)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	routeCmd.PersistentFlags().IntP("columns", "n", 0, "column count (default from config)")
	for _, c := range []*cobra.Command{routeEncryptCmd, routeDecryptCmd} {
		addInputFlags(c)
		c.Flags().Bool("show-table", false, "print the plaintext table before the result")
		routeCmd.AddCommand(c)
	}
	rootCmd.AddCommand(routeCmd)
}
