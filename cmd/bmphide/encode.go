package main

import (
	"fmt"

	"github.com/bmphide/bmphide"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// progressThresholdBits is the carrier capacity above which the encode
// path renders a progress bar; smaller carriers finish fast enough that
// a bar would only flicker.
const progressThresholdBits = 100_000

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <infile> <outfile> <message>",
		Short: "Hide message inside infile and write the result to outfile",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0], args[1], args[2])
		},
	}
}

func runEncode(inFile, outFile, message string) error {
	if message == "" {
		return newArgError(bmphide.ErrEmptyMessage)
	}

	log.Info().Str("in", inFile).Str("out", outFile).Msg("inspecting carrier")
	capacity, err := bmphide.Inspect(inFile)
	if err != nil {
		return err
	}
	log.Debug().Int("available_bits", capacity.AvailableBits).Int("max_message_bytes", capacity.MaxMessageBytes).Msg("carrier capacity")

	var bar *progressbar.ProgressBar
	if capacity.TotalBits >= progressThresholdBits {
		bar = progressbar.NewOptions(4,
			progressbar.OptionSetDescription("embedding"),
			progressbar.OptionShowCount(),
		)
	}
	step := func(label string) {
		log.Debug().Msg(label)
		if bar != nil {
			bar.Add(1)
		}
	}

	step("decoding carrier")
	step("compressing message")
	step("writing envelope")
	if err := bmphide.Encode(inFile, outFile, message); err != nil {
		return err
	}
	step("done")
	if bar != nil {
		bar.Finish()
		fmt.Println()
	}

	if err := recordRecent(inFile); err != nil {
		log.Warn().Err(err).Msg("could not update recent-files list")
	}
	if err := recordRecent(outFile); err != nil {
		log.Warn().Err(err).Msg("could not update recent-files list")
	}

	log.Info().Str("out", outFile).Msg("message hidden")
	return nil
}
