// Package commands defines the chatbot CLI command tree.
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/HafizhRaihan31/Chatbot-MPL/cmd/chatbot-cli/ui"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/config"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "chatbot-cli",
	Short: "Chatbot MPL Indonesia - tanya jadwal, klasemen, dan roster dari terminal",
	Long: `Chatbot MPL Indonesia menjawab pertanyaan seputar liga langsung dari
snapshot data lokal: jadwal pertandingan, klasemen, roster tim, dan pelatih.
Pertanyaan di luar data lokal diteruskan ke penyedia AI bila API key tersedia.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		ui.Init(noColor, verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadEnvironment loads config and the dataset snapshot for a command run.
func loadEnvironment() (*config.Config, *dataset.Store, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	store, err := dataset.Load(cfg.Dataset.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset from %s: %w", cfg.Dataset.Dir, err)
	}

	ui.Verbose("Dataset loaded: %d teams, %d standings, %d matches",
		len(store.Teams()), len(store.Standings()), len(store.Schedule()))

	return cfg, store, nil
}
