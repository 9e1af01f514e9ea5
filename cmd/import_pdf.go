package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahued73/examapp/internal/extract"
	"github.com/mahued73/examapp/internal/pdftext"
)

var importPDFCmd = &cobra.Command{
	Use:   "import-pdf <path>",
	Short: "Extract questions from a PDF",
	Long: "Extract multiple-choice questions from a PDF whose text follows the " +
		"numbered-question convention (\"1. ...\" / \"A)\"-\"D)\" / \"Answer:\" / " +
		"\"Explanation:\") and store them under the given level and subject.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)
		path := args[0]
		level, _ := cmd.Flags().GetString("level")
		subject, _ := cmd.Flags().GetString("subject")

		text, err := pdftext.Extract(path)
		if err != nil {
			return fmt.Errorf("extract text: %w", err)
		}
		log.Debug().Str("path", path).Int("chars", len(text)).Msg("pdf text extracted")

		res := extract.Parse(text, level, subject)
		if res.Dropped > 0 {
			log.Warn().Int("dropped", res.Dropped).
				Msg("question blocks without exactly 4 options were discarded")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		for i := range res.Records {
			if err := st.Append(ctx, &res.Records[i]); err != nil {
				return fmt.Errorf("store question %d: %w", i+1, err)
			}
		}

		log.Info().Str("path", path).Str("subject", subject).Str("level", level).
			Int("imported", len(res.Records)).Int("dropped", res.Dropped).
			Msg("pdf import complete")
		fmt.Printf("Imported %d questions from %s\n", len(res.Records), path)
		return nil
	},
}

func init() {
	importPDFCmd.Flags().String("level", "", "Difficulty label for every imported question")
	importPDFCmd.Flags().String("subject", "", "Subject label for every imported question")
	importPDFCmd.MarkFlagRequired("level")
	importPDFCmd.MarkFlagRequired("subject")
}
