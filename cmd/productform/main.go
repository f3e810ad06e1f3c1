// Command productform validates product form input over HTTP, from flags or
// through an interactive prompt.
package main

import (
	"os"

	"github.com/Gobd/formvalidation/cmd/productform/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
