package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/NaithaniAR/10Knodes/internal/app"
)

// main is the entrypoint for the nodegen binary. The program takes no
// arguments; everything it does is fixed by compiled-in constants.
func main() {
	// Minimal logger for anything that fires before the app configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program logic for easier testing and error handling.
func run(outW, errW io.Writer) error {
	return app.NewApp(outW, errW).Run(context.Background())
}
