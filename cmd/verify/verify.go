package verify

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Electron-Labs/groth16-verifier/cmd"
	"github.com/Electron-Labs/groth16-verifier/groth16"
)

var (
	proofFile  string
	keyFile    string
	inputsFile string
	collapsed  bool
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a Groth16 proof against a verifying key and public inputs",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runVerify(); err != nil {
			log.Fatal().Err(err).Msg("verification aborted")
		}
	},
}

func init() {
	cmd.RootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&proofFile, "proof", "", "path of the proof file")
	verifyCmd.Flags().StringVar(&keyFile, "key", "", "path of the verifying key file")
	verifyCmd.Flags().StringVar(&inputsFile, "inputs", "", "path of the public inputs file")
	verifyCmd.Flags().BoolVar(&collapsed, "collapsed", false, "report only the collapsed 0/1 boundary signal")
	verifyCmd.MarkFlagRequired("proof")
	verifyCmd.MarkFlagRequired("key")
}

func runVerify() error {
	proofBytes, err := os.ReadFile(proofFile)
	if err != nil {
		return err
	}
	keyBytes, err := os.ReadFile(keyFile)
	if err != nil {
		return err
	}
	var inputBytes []byte
	if inputsFile != "" {
		if inputBytes, err = os.ReadFile(inputsFile); err != nil {
			return err
		}
	}

	if collapsed {
		result := groth16.VerifyBytes(proofBytes, keyBytes)
		fmt.Println(result)
		if result == 0 {
			os.Exit(1)
		}
		return nil
	}

	valid, err := groth16.VerifyBlob(proofBytes, keyBytes, inputBytes)
	switch {
	case err != nil:
		log.Error().Err(err).Msg("malformed input")
		os.Exit(1)
	case !valid:
		log.Error().Msg("proof is invalid")
		os.Exit(1)
	}
	log.Info().Int("public_inputs", len(inputBytes)/groth16.SizeScalar).Msg("proof is valid")
	return nil
}
