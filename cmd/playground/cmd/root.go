package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"api-playground/cmd/playground/cmd/serve"
	"api-playground/cmd/playground/cmd/transcribe"
	"api-playground/cmd/playground/cmd/version"
	"api-playground/internal/config"
)

var (
	Verbose bool
	envFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playground",
	Short: "A demonstration web service and an audio-to-text job",
	Long: `A demonstration web service and an audio-to-text job.
- serve starts the HTTP service with parameter parsing and validation examples
- transcribe sends one local audio file to the OpenAI speech API and writes the text`,
	TraverseChildren: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if Verbose && envFile != "" {
			cmd.PrintErrf("Loaded environment from %s\n", envFile)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(apiKeys *config.APIKeys, loadedEnv string) {
	transcribe.SetAPIKeys(apiKeys)
	envFile = loadedEnv

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
