package prove

import (
	"fmt"
	"os"
	"time"

	"github.com/consensys/gnark/frontend"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Electron-Labs/groth16-verifier/circuits"
	"github.com/Electron-Labs/groth16-verifier/cmd"
)

var circuitName string

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Generate a sample proof, verifying key and public inputs in the wire format",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runProve(); err != nil {
			log.Fatal().Err(err).Msg("proving failed")
		}
	},
}

func init() {
	cmd.RootCmd.AddCommand(proveCmd)

	proveCmd.Flags().StringVar(&circuitName, "circuit", "cubic", "circuit to prove: cubic or cubic-root")
}

func runProve() error {
	var circuit, assignment frontend.Circuit
	switch circuitName {
	case "cubic":
		circuit = &circuits.Cubic{}
		assignment = &circuits.Cubic{X: 3, Y: 35}
	case "cubic-root":
		circuit = &circuits.CubicRoot{}
		assignment = &circuits.CubicRoot{X: 3}
	default:
		return fmt.Errorf("unknown circuit %q", circuitName)
	}

	log.Info().Str("circuit", circuitName).Msg("compiling and proving")
	start := time.Now()
	fixture, err := circuits.Generate(circuit, assignment)
	if err != nil {
		return err
	}
	log.Info().Float64("seconds", time.Since(start).Seconds()).Msg("done")

	outputDir := cmd.OutputDir + "/" + circuitName + "/"
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return err
	}
	if err := os.WriteFile(outputDir+"proof.bin", fixture.Proof, 0644); err != nil {
		return err
	}
	if err := os.WriteFile(outputDir+"vk.bin", fixture.Key, 0644); err != nil {
		return err
	}
	if err := os.WriteFile(outputDir+"inputs.bin", fixture.Inputs, 0644); err != nil {
		return err
	}
	log.Info().Str("dir", outputDir).Msg("artifacts written")
	return nil
}
