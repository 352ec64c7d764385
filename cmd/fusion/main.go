package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/fitfusion/fusion/app"
	"github.com/fitfusion/fusion/internal/osutil"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(osutil.ExitError)
	}
}
