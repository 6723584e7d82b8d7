package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Menu-driven encrypt/decrypt session",
	Long: `Start a menu-driven session with one engine.

Each round reads a choice (1 encrypt, 2 decrypt, 0 exit) and then one line of
text. Errors are reported and the session continues. Prompts are printed only
when stdin is a terminal, so a session can also be scripted:

  printf '1\nHELLO\n0\n' | lvcipher interactive route --columns 3`,
}

var interactiveAlphaCmd = &cobra.Command{
	Use:   "alpha",
	Short: "Interactive substitution session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		c, err := newAlpha(key, cmd.Flags().Changed("key"))
		if err != nil {
			return err
		}
		in := cmd.InOrStdin()
		return runInteractive(in, cmd.OutOrStdout(), c, isTerminal(in))
	},
}

var interactiveRouteCmd = &cobra.Command{
	Use:   "route",
	Short: "Interactive route transposition session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		columns, _ := cmd.Flags().GetInt("columns")
		c, err := newRoute(columns, cmd.Flags().Changed("columns"))
		if err != nil {
			return err
		}
		in := cmd.InOrStdin()
		return runInteractive(in, cmd.OutOrStdout(), c, isTerminal(in))
	},
}

// maxLineSize bounds one interactive input line.
const maxLineSize = 16 << 20

// runInteractive drives the menu loop until "0" or end of input.
func runInteractive(in io.Reader, out io.Writer, eng engine, prompt bool) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	say := func(s string) {
		if prompt {
			fmt.Fprint(out, s)
		}
	}

	for {
		say("\n1 - encrypt\n2 - decrypt\n0 - exit\n> ")
		if !sc.Scan() {
			return sc.Err()
		}
		choice := strings.TrimSpace(sc.Text())
		switch choice {
		case "":
			continue
		case "0":
			say("bye\n")
			return nil
		case "1", "2":
			say("text: ")
			if !sc.Scan() {
				return sc.Err()
			}
			decrypt := choice == "2"
			res, err := apply(eng, decrypt, strings.TrimSuffix(sc.Text(), "\r"))
			if err != nil {
				fmt.Fprintf(out, "[ERROR] %v\n", err)
				continue
			}
			if decrypt {
				fmt.Fprintf(out, "[DECRYPTED] %s\n", res)
			} else {
				fmt.Fprintf(out, "[ENCRYPTED] %s\n", res)
			}
		default:
			fmt.Fprintf(out, "[WARN] unknown choice %q\n", choice)
		}
	}
}

func init() {
	interactiveAlphaCmd.Flags().StringP("key", "k", "", "substitution key (default from config)")
	interactiveRouteCmd.Flags().IntP("columns", "n", 0, "column count (default from config)")
	interactiveCmd.AddCommand(interactiveAlphaCmd, interactiveRouteCmd)
	rootCmd.AddCommand(interactiveCmd)
}
