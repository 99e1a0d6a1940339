package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adamspd/LogicQuiz/catalog"
	"github.com/adamspd/LogicQuiz/config"
	"github.com/adamspd/LogicQuiz/utils"
)

var rootCmd = &cobra.Command{
	Use:   "logicquiz",
	Short: "Propositional logic quiz API",
	Long:  "Logic Quiz serves questions by subject, records quiz attempts and reports each user's performance.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Path to a YAML question catalog (overrides QUESTIONS_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Load()
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		cfg.QuestionsFile = p
	}
	if err := utils.InitLogger(cfg.LogMode); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.QuestionsFile == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(cfg.QuestionsFile)
}
