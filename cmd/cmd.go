// cmd.go - CLI Hauptdatei
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/7blacky7/tensorlower/envconfig"
	"github.com/7blacky7/tensorlower/logutil"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-28s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "tensorlower",
		Short:         "Typed constant and index lowering helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel()))
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	// Commands erstellen
	traitsCmd := newTraitsCmd()
	accumCmd := newAccumCmd()
	argmaxCmd := newArgMaxCmd()
	onehotCmd := newOneHotCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	envs := []envconfig.EnvVar{envVars["TENSORLOWER_DEBUG"]}

	for _, cmd := range []*cobra.Command{
		traitsCmd,
		accumCmd,
		argmaxCmd,
		onehotCmd,
	} {
		switch cmd {
		case argmaxCmd, onehotCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["TENSORLOWER_DEBUG"],
				envVars["TENSORLOWER_BACKEND"],
				envVars["TENSORLOWER_MAX_GRAPH_NODES"],
			})
		default:
			appendEnvDocs(cmd, envs)
		}
	}

	rootCmd.AddCommand(
		traitsCmd,
		accumCmd,
		argmaxCmd,
		onehotCmd,
	)

	return rootCmd
}
