// Command bmphide hides a text message inside a 24-bit BMP image, and
// recovers it again.
//
// Usage:
//
//	bmphide encode <infile> <outfile> <message>
//	bmphide decode <infile> [outfile]
//	bmphide recent
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "bmphide",
		Short: "Hide and recover text messages in 24-bit BMP images",
	}
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newRecentCmd())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return newArgError(err)
	})
	for _, c := range root.Commands() {
		if validate := c.Args; validate != nil {
			c.Args = func(cmd *cobra.Command, args []string) error {
				if err := validate(cmd, args); err != nil {
					return newArgError(err)
				}
				return nil
			}
		}
	}

	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a core error to a negative exit code: -1 bad
// arguments to a subcommand, -2 format error, -3 capacity/size error,
// -4 anything else.
func exitCodeFor(err error) int {
	switch {
	case isArgError(err):
		return -1
	case isFormatError(err):
		return -2
	case isCapacityError(err):
		return -3
	default:
		return -4
	}
}
