// ripple-keys encodes, decodes and derives ledger tokens from the command
// line.
package main

import (
	"fmt"
	"os"

	"github.com/alexdcox/ripple-go"
	"github.com/urfave/cli/v2"
)

var log = ripple.Log()

// Build information, set via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := App().Run(os.Args); err != nil {
		log.Debug().Msg(ripple.StackTracerMessage(err))
		log.Fatal().Msgf("%v", err)
	}
}

func App() *cli.App {
	return &cli.App{
		Name:    "ripple-keys",
		Usage:   "encode, decode and derive ledger keys, seeds and addresses",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "loglevel",
				Usage:   "Set the log level (trace|debug|info|warn|error|fatal)",
				EnvVars: []string{"RIPPLE_LOG_LEVEL"},
				Value:   "info",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as json",
			},
		},
		Before: func(c *cli.Context) error {
			return ripple.SetLogLevel(c.String("loglevel"))
		},
		Commands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			inspectCommand(),
			walletCommand(),
			validatorKeysCommand(),
		},
	}
}
