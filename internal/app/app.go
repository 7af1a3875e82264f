package app

import (
	"io"
	"log/slog"

	"github.com/NaithaniAR/10Knodes/internal/hierarchy"
)

// OutputPath is the fixed relative destination of the generated dataset.
// There is deliberately no way to change it at runtime; the program's whole
// configuration surface is the set of constants compiled into it.
const OutputPath = "data.json"

// App encapsulates the generator's dependencies and lifecycle. Summary
// lines go to outW (the stdout contract); diagnostics go through logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	shape  hierarchy.Shape
}

// NewApp returns a fully initialized App writing its summary to outW and
// its diagnostics to errW.
func NewApp(outW, errW io.Writer) *App {
	return &App{
		outW:   outW,
		logger: newLogger(errW),
		shape:  hierarchy.DefaultShape(),
	}
}
