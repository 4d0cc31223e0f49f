// Package cli implements the unifi-facts command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// cliVersion is the version the version command reports.
const cliVersion = "v0.1.0"

// errAlreadyReported marks failures whose result JSON already went to
// stdout, so Execute only sets the exit code.
var errAlreadyReported = errors.New("already reported")

var (
	// Global flags
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unifi-facts [command] [flags]",
	Short: "Read-only fact gathering against a UniFi Network controller",
	Long: `unifi-facts runs read-only queries against the classic UniFi Network
controller API and prints the normalized result as JSON on stdout.

Connection settings come from flags, UNIFI_FACTS_* environment
variables, a .env file, or a unifi-facts.yaml config file, in that
order of precedence.

Examples:
  # List the sites on a controller
  unifi-facts query list_sites --base-url https://192.168.1.1:8443 \
      --username admin --password secret

  # Adopted devices of one site, trusting a self-signed certificate
  unifi-facts query list_devices --site branch-office --insecure

  # Events of the last day only
  unifi-facts query list_events --since 24

  # Show the full query catalog
  unifi-facts queries`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	// Set up persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file (default unifi-facts.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error, disabled")

	// Add commands
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newQueriesCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errAlreadyReported) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newVersionCmd creates and returns a new version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of unifi-facts",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("unifi-facts %s\n", cliVersion)
		},
	}
}
