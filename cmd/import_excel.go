package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahued73/examapp/internal/sheet"
)

var importExcelCmd = &cobra.Command{
	Use:   "import-excel <path>",
	Short: "Import questions from an xlsx workbook",
	Long: "Import question rows from the first sheet of an xlsx workbook. The header " +
		"row must carry the columns level, subject, text, option1-option4, correct " +
		"and explanation; a missing column aborts the import before any row is stored.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)
		path := args[0]

		records, err := sheet.Read(path)
		if err != nil {
			return fmt.Errorf("read workbook: %w", err)
		}
		log.Debug().Str("path", path).Int("rows", len(records)).Msg("workbook parsed")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		for i := range records {
			if err := st.Append(ctx, &records[i]); err != nil {
				return fmt.Errorf("store row %d: %w", i+1, err)
			}
		}

		log.Info().Str("path", path).Int("imported", len(records)).Msg("excel import complete")
		fmt.Printf("Imported %d questions from %s\n", len(records), path)
		return nil
	},
}
