// Command passforge generates passwords in the terminal.
//
// Usage:
//
//	passforge [--length 20] [--categories upper,lower,digit] [--count 3] [--copy]
//	passforge token --subject ops
package main

import (
	"os"

	"github.com/passforge/passforge-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
