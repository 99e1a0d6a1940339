package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate the question catalog and list its subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, info := range c.SubjectInfos() {
			fmt.Fprintf(out, "%-20s %d\n", info.Subject, info.QuestionCount)
		}
		fmt.Fprintf(out, "%d distinct questions\n", c.TotalQuestions())
		return nil
	},
}
