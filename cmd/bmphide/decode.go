package main

import (
	"fmt"
	"os"

	"github.com/bmphide/bmphide"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <infile> [outfile]",
		Short: "Recover a message hidden in infile",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFile := ""
			if len(args) == 2 {
				outFile = args[1]
			}
			return runDecode(args[0], outFile)
		},
	}
}

func runDecode(inFile, outFile string) error {
	log.Info().Str("in", inFile).Msg("recovering message")
	message, err := bmphide.Decode(inFile)
	if err != nil {
		return err
	}

	if outFile == "" {
		fmt.Println(message)
	} else if err := os.WriteFile(outFile, []byte(message), 0o644); err != nil {
		return fmt.Errorf("bmphide: %w", err)
	}

	if err := recordRecent(inFile); err != nil {
		log.Warn().Err(err).Msg("could not update recent-files list")
	}
	return nil
}
