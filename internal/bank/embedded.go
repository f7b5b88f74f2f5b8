package bank

import _ "embed"

// defaultBank is the bank shipped with the binary, used when no
// --bank flag or THEORYPREP_BANK path is given.
//
//go:embed questions.json
var defaultBank []byte

// Default loads the embedded question bank.
func Default() (*File, LoadReport, error) {
	return LoadBytes(defaultBank)
}
