package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/fibseq/internal/app"
	apperrors "github.com/agbru/fibseq/internal/errors"
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
		if app.IsConfigError(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(apperrors.ExitErrorConfig)
		}
		// flag parse errors already printed their own usage message
		os.Exit(apperrors.ExitErrorConfig)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
