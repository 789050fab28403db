package main

import (
	"os"

	"github.com/tassiovirginio/try-rs/cmd"
	"github.com/tassiovirginio/try-rs/internal/errors"
	"github.com/tassiovirginio/try-rs/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.UserError("%v", err)
		os.Exit(errors.GetExitCode(err))
	}
}
