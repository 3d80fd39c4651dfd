package main

import (
	"os"

	"github.com/msto63/wortschatz/cmd/wortschatz/cmd"
	wserror "github.com/msto63/wortschatz/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(wserror.GetCode(err).ExitCode())
	}
}
