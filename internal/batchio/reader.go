// Package batchio is the file I/O boundary named in spec.md 1 and 6: it
// reads the input command file and writes the two output documents. JSON
// encoding throughout uses the standard library's encoding/json — no
// third-party JSON library appears as a load-bearing dependency anywhere
// in the retrieved corpus, so the standard library is the grounded choice
// (see DESIGN.md).
package batchio

import (
	"os"

	"matchbook/internal/apperr"
	"matchbook/internal/command"
)

// ReadCommands reads and parses the input command file at path.
func ReadCommands(path string) ([]command.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindIO, "failed to read input file "+path, err)
	}
	return command.ParseAll(data)
}
