package main

import (
	"fmt"
	"os"

	"github.com/decision-lab/driftkit/cmd/driftkit-cli/driftkit"
	"github.com/urfave/cli/v2"
)

// initDriftkitApp initializes the driftkit-cli app. This function is
// called by the main function and unit tests.
func initDriftkitApp() *cli.App {
	return &cli.App{
		Name:     "Driftkit Decision-Model Toolkit",
		HelpName: "driftkit",
		Usage:    "simulates and evaluates the drift-diffusion model of binary decisions",
		Flags:    []cli.Flag{},
		Commands: []*cli.Command{
			&driftkit.SimulateCommand,
			&driftkit.DensityCommand,
			&driftkit.MarginalCommand,
			&driftkit.ValidateCommand,
		},
	}
}

// main implements the "driftkit" cli application.
func main() {
	app := initDriftkitApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
