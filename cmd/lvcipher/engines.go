package main

import (
	"github.com/katalvlaran/lvcipher/modalpha"
	"github.com/katalvlaran/lvcipher/tableroute"
)

// engine is what every subcommand needs from a cipher.
type engine interface {
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// Compile-time checks.
var (
	_ engine = (*modalpha.Cipher)(nil)
	_ engine = (*tableroute.Cipher)(nil)
)

// newAlpha builds the substitution engine; flagKey wins when set.
func newAlpha(flagKey string, flagSet bool) (*modalpha.Cipher, error) {
	key := cfg.Alpha.Key
	if flagSet {
		key = flagKey
	}
	c, err := modalpha.New(key)
	if err != nil {
		return nil, err
	}
	logger.Debug("engine ready", "engine", "alpha", "key_len", c.KeyLen())
	return c, nil
}

// newRoute builds the route engine; flagColumns wins when set.
func newRoute(flagColumns int, flagSet bool) (*tableroute.Cipher, error) {
	columns := cfg.Route.Columns
	if flagSet {
		columns = flagColumns
	}
	c, err := tableroute.New(columns)
	if err != nil {
		return nil, err
	}
	logger.Debug("engine ready", "engine", "route", "columns", c.Columns())
	return c, nil
}

// apply runs one direction of eng over text.
func apply(eng engine, decrypt bool, text string) (string, error) {
	if decrypt {
		return eng.Decrypt(text)
	}
	return eng.Encrypt(text)
}
