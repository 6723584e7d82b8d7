// Package config loads lvcipher CLI settings from an optional YAML file with
// environment overrides.
//
// Loading order:
//
//  1. Default values (Default).
//  2. YAML file, when present. A missing file is an error only when the
//     caller marked the path as required (an explicit --config flag).
//  3. Environment overrides: LVCIPHER_ALPHA_KEY, LVCIPHER_ROUTE_COLUMNS,
//     LVCIPHER_SHOW_TABLE, LVCIPHER_LOG_LEVEL.
//  4. Validate.
//
// Example file:
//
//	alpha:
//	  key: КЛЮЧ
//	route:
//	  columns: 4
//	output:
//	  show_table: true
//	log:
//	  level: info
//
// Cipher keys are not checked here beyond their shape; the engines own key
// validation and report it with *cipherr.Error.
package config
