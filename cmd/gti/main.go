// cmd/gti/main.go
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"go-type-input/internal/input"
)

var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		// Configuration problems the user can fix exit with 2.
		if input.IsUserError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
