// Package exam runs an interactive quiz over a sampled set of
// questions.
package exam

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mahued73/examapp/internal/question"
	"github.com/mahued73/examapp/internal/ui/theme"
)

// Sampler supplies the questions for one session. Satisfied by the
// store.
type Sampler interface {
	Sample(ctx context.Context, subject string, count int) ([]question.Record, error)
}

// Summary is the outcome of one session.
type Summary struct {
	Score int
	Total int
}

// Runner asks sampled questions on Out and reads answers from In.
// Questions are asked in the sampler's order; the runner never
// re-sorts them.
type Runner struct {
	Sampler Sampler
	In      io.Reader
	Out     io.Writer
}

// Run quizzes the user on up to count questions for the given subject
// (empty = any subject) and reports the score. An empty sample is not
// an error: it prints a notice and returns a zero-total summary.
//
// Answers are read as the integers 1-4. Anything unparseable counts
// as 0, which can never match a stored correct index, so malformed
// input registers as a wrong answer instead of failing the session.
func (r *Runner) Run(ctx context.Context, subject string, count int) (Summary, error) {
	records, err := r.Sampler.Sample(ctx, subject, count)
	if err != nil {
		return Summary{}, fmt.Errorf("sample questions: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(r.Out, theme.Hint.Render("No questions available."))
		return Summary{}, nil
	}

	reader := bufio.NewReader(r.In)
	sum := Summary{Total: len(records)}

	for _, rec := range records {
		fmt.Fprintln(r.Out)
		fmt.Fprintln(r.Out, theme.Question.Render(rec.Text))
		for i, opt := range rec.Options {
			fmt.Fprintln(r.Out, theme.Option.Render(fmt.Sprintf("%d) %s", i+1, opt)))
		}

		answer := readAnswer(reader, r.Out)
		if answer == rec.Correct {
			sum.Score++
			fmt.Fprintln(r.Out, theme.Correct.Render("Correct!"))
		} else {
			msg := "Incorrect."
			if rec.Explanation != "" {
				msg += " " + rec.Explanation
			}
			fmt.Fprintln(r.Out, theme.Incorrect.Render(msg))
		}
	}

	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, theme.Heading.Render(
		fmt.Sprintf("Result: %d/%d correct", sum.Score, sum.Total)))
	return sum, nil
}

// readAnswer prompts for one response. Non-numeric input, empty
// input, and read failures (closed stdin) all coerce to 0.
func readAnswer(reader *bufio.Reader, out io.Writer) int {
	fmt.Fprint(out, "Your answer (1-4): ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0
	}
	return n
}
