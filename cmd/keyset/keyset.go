package keyset

import (
	"encoding/hex"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Electron-Labs/groth16-verifier/cmd"
	registry "github.com/Electron-Labs/groth16-verifier/keyset"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// keysetCmd represents the keyset command
var keysetCmd = &cobra.Command{
	Use:   "keyset [key files]",
	Short: "Fingerprint verifying keys and compute their merkle commitment",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runKeyset(args); err != nil {
			log.Fatal().Err(err).Msg("keyset failed")
		}
	},
}

func init() {
	cmd.RootCmd.AddCommand(keysetCmd)
}

func runKeyset(paths []string) error {
	set := registry.New()
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fingerprint, err := set.Add(path, raw)
		if err != nil {
			return err
		}
		log.Info().Str("key", path).Str("fingerprint", hex.EncodeToString(fingerprint)).Msg("registered")
	}
	root, err := set.Root()
	if err != nil {
		return err
	}
	log.Info().Str("root", hex.EncodeToString(root)).Int("keys", set.Len()).Msg("keyset committed")
	return nil
}
