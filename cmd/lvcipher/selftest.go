package main

import (
	"fmt"
	"io"
	"log/slog"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcipher/cipherr"
	"github.com/katalvlaran/lvcipher/modalpha"
	"github.com/katalvlaran/lvcipher/tableroute"
)

// scenario is one selftest case. want == cipherr.Unknown means the round
// trip must succeed and return the sanitized text.
type scenario struct {
	name    string
	engine  string // "alpha" or "route"
	key     string
	columns int
	text    string
	corrupt bool // lowercase the first ciphertext letter before decrypting
	want    cipherr.Kind
}

var scenarios = []scenario{
	{name: "alpha: russian text", engine: "alpha", key: "КЛЮЧ", text: "ПРИВЕТМИР"},
	{name: "alpha: long word", engine: "alpha", key: "ШИФР", text: "ПРОГРАММИРОВАНИЕ"},
	{name: "alpha: full alphabet", engine: "alpha", key: "АЛФАВИТ", text: "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"},
	{name: "alpha: noisy mixed case", engine: "alpha", key: "ключ", text: "Привет, мир! 2025"},
	{name: "alpha: latin key", engine: "alpha", key: "KEY", text: "HELLOWORLD", want: cipherr.InvalidKeyCharacter},
	{name: "alpha: latin key 2", engine: "alpha", key: "CODE", text: "PROGRAMMING", want: cipherr.InvalidKeyCharacter},
	{name: "alpha: latin text", engine: "alpha", key: "КЛЮЧ", text: "HELLOWORLD", want: cipherr.EmptyPlaintext},
	{name: "alpha: empty key", engine: "alpha", key: "", text: "ПРИВЕТМИР", want: cipherr.EmptyKey},
	{name: "alpha: digits only", engine: "alpha", key: "КЛЮЧ", text: "123", want: cipherr.EmptyPlaintext},
	{name: "alpha: weak key", engine: "alpha", key: "ААА", text: "ПРИВЕТ", want: cipherr.WeakKey},
	{name: "alpha: one-letter key", engine: "alpha", key: "К", text: "ПРИВЕТ", want: cipherr.WeakKey},
	{name: "alpha: corrupted ciphertext", engine: "alpha", key: "ПАРОЛЬ", text: "ТЕСТ", corrupt: true, want: cipherr.InvalidCiphertext},
	{name: "route: text longer than key", engine: "route", columns: 3, text: "HELLO"},
	{name: "route: text equals key", engine: "route", columns: 5, text: "WORLD", want: cipherr.TextTooShort},
	{name: "route: text shorter than key", engine: "route", columns: 10, text: "HI", want: cipherr.TextTooShort},
	{name: "route: zero key", engine: "route", columns: 0, text: "HELLO", want: cipherr.InvalidColumnCount},
	{name: "route: no letters", engine: "route", columns: 3, text: "12345", want: cipherr.NoLettersInPlaintext},
	{name: "route: empty text", engine: "route", columns: 3, text: "", want: cipherr.EmptyPlaintext},
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in cipher scenarios",
	Long: `Run a fixed list of encrypt/decrypt scenarios against both engines and
print one [OK] or [FAIL] line per scenario. Exits non-zero if any fail.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := runSelftest(cmd.OutOrStdout(), logger, scenarios)
		if failed > 0 {
			return fmt.Errorf("selftest: %d of %d scenarios failed", failed, len(scenarios))
		}
		return nil
	},
}

// runSelftest executes list and returns the number of failures.
func runSelftest(out io.Writer, log *slog.Logger, list []scenario) int {
	failed := 0
	for _, sc := range list {
		detail, err := sc.run()
		if err != nil {
			failed++
			fmt.Fprintf(out, "[FAIL] %s: %v\n", sc.name, err)
			log.Warn("selftest scenario failed", "scenario", sc.name, "err", err)
			continue
		}
		fmt.Fprintf(out, "[OK] %s: %s\n", sc.name, detail)
		log.Debug("selftest scenario passed", "scenario", sc.name)
	}
	fmt.Fprintf(out, "%d passed, %d failed\n", len(list)-failed, failed)
	return failed
}

// run executes the scenario and returns a short description of the outcome,
// or an error describing how it deviated from the expectation.
func (sc scenario) run() (string, error) {
	got, outcome, err := sc.roundTrip()
	switch {
	case err == nil && sc.want == cipherr.Unknown:
		return outcome, nil
	case err == nil:
		return "", fmt.Errorf("expected %s, got success %q", sc.want, got)
	case sc.want == cipherr.Unknown:
		return "", fmt.Errorf("unexpected error: %w", err)
	case cipherr.KindOf(err) != sc.want:
		return "", fmt.Errorf("expected %s, got %w", sc.want, err)
	}
	return "rejected as expected: " + err.Error(), nil
}

// roundTrip builds the engine, encrypts, optionally corrupts, decrypts and
// checks the result against the sanitized text.
func (sc scenario) roundTrip() (got, outcome string, err error) {
	var (
		eng      engine
		expected string
	)
	switch sc.engine {
	case "alpha":
		c, err := modalpha.New(sc.key)
		if err != nil {
			return "", "", err
		}
		eng, expected = c, modalpha.Sanitize(sc.text)
	case "route":
		c, err := tableroute.New(sc.columns)
		if err != nil {
			return "", "", err
		}
		eng, expected = c, tableroute.Sanitize(sc.text)
	default:
		return "", "", fmt.Errorf("unknown engine %q", sc.engine)
	}

	ct, err := eng.Encrypt(sc.text)
	if err != nil {
		return "", "", err
	}
	if sc.corrupt {
		ct = lowerFirst(ct)
	}
	pt, err := eng.Decrypt(ct)
	if err != nil {
		return "", "", err
	}
	if pt != expected {
		return pt, "", fmt.Errorf("round trip mismatch: want %q, got %q", expected, pt)
	}
	return pt, fmt.Sprintf("%s -> %s -> %s", sc.text, ct, pt), nil
}

// lowerFirst lowercases the first rune of s.
func lowerFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}
