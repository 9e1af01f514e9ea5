package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahued73/examapp/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question bank statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		counts, err := st.Counts(cmd.Context())
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		if len(counts) == 0 {
			fmt.Println(theme.Hint.Render("The question bank is empty."))
			return nil
		}

		fmt.Println(theme.Heading.Render("Questions per subject and level"))
		total := 0
		for _, c := range counts {
			fmt.Printf("  %-20s %-10s %d\n", c.Subject, c.Level, c.Count)
			total += c.Count
		}
		fmt.Printf("  %-20s %-10s %d\n", "total", "", total)
		return nil
	},
}
