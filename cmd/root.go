package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/trimsy-app/trimsy_backend/cmd/http"
	systemcmd "github.com/trimsy-app/trimsy_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "trimsy",
	Short: "Trimsy multi-tenant booking platform for salons, barbershops and studios.",
	Long: `Trimsy is a multi-tenant appointment booking platform for service
businesses. It handles availability, reservations and a points-based
loyalty program through a single unified deployment.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
