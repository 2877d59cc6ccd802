package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/esvanberg/voctrain/internal/config"
	"github.com/esvanberg/voctrain/internal/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "voctrain",
	Short: "Vocabulary trainer for the terminal",
	Long: "Voctrain — terminal vocabulary trainer. Drill ten-word blocks, fix the\n" +
		"answer key as you go, and take exams to climb through the levels.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Init(cfgFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().String("state", "", "Path to SQLite state file (overrides VOCTRAIN_DB env var)")
	rootCmd.PersistentFlags().String("vocab-dir", "", "Directory to scan for *_voc.txt files")

	viper.BindPFlag(config.KeyStateDB, rootCmd.PersistentFlags().Lookup("state"))
	viper.BindPFlag(config.KeyVocabDir, rootCmd.PersistentFlags().Lookup("vocab-dir"))

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the state file path: flag or config first, then
// VOCTRAIN_DB env var, then the default XDG path.
func resolveDBPath() (string, error) {
	if p := config.StateDB(); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
