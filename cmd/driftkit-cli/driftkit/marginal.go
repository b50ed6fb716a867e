package driftkit

import (
	"fmt"
	"io"
	"log"

	"github.com/decision-lab/driftkit/logger"
	"github.com/decision-lab/driftkit/utils"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// MarginalCommand data structure for the marginal app.
var MarginalCommand = cli.Command{
	Action: marginalAction,
	Name:   "marginal",
	Usage:  "Prints the closed-form probability of each choice",
	Flags: []cli.Flag{
		&utils.StartFractionFlag,
		&utils.BarrierSeparationFlag,
		&utils.DriftRateFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The marginal command prints the probability that the process is absorbed
at the lower and at the upper barrier. The two probabilities sum to one.`,
}

// marginalAction implements the marginal command.
func marginalAction(ctx *cli.Context) error {
	cfg := utils.NewConfig(ctx)
	p := cfg.Params()
	if err := p.Check(); err != nil {
		return err
	}

	lower, upper, err := marginals(p)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold).SprintfFunc()
	output(ctx.App.Writer, "Choice 0 (lower barrier):\t%s\n", bold("%.6f", lower))
	output(ctx.App.Writer, "Choice 1 (upper barrier):\t%s\n", bold("%.6f", upper))
	output(ctx.App.Writer, "Sum:\t\t\t\t%s\n", bold("%.6f", lower+upper))
	return nil
}

// output the given message with formatting.
func output(w io.Writer, format string, a ...any) {
	_, err := fmt.Fprintf(w, format, a...)
	if err != nil {
		log.Println("output error", err.Error())
	}
}
