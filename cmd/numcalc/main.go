package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/agbru/numcalc/internal/app"
	apperrors "github.com/agbru/numcalc/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		// The flag package prints its own parse diagnostics; only our
		// validation errors still need reporting here.
		var ce apperrors.ConfigError
		if errors.As(err, &ce) || apperrors.IsValidationError(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
