package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahued73/examapp/internal/exam"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Take a quiz from the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		num, _ := cmd.Flags().GetInt("num")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		runner := &exam.Runner{Sampler: st, In: os.Stdin, Out: os.Stdout}
		if _, err := runner.Run(cmd.Context(), subject, num); err != nil {
			return fmt.Errorf("run exam: %w", err)
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().String("subject", "", "Restrict questions to one subject (default: any)")
	evaluateCmd.Flags().Int("num", 5, "Number of questions to ask")
}
