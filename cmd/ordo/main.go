package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			// Interrupted runs exit the way a SIGINT-killed process would.
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "ordo:", err)
		os.Exit(1)
	}
}
