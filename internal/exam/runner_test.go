package exam

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahued73/examapp/internal/question"
)

// fakeSampler returns a fixed slice and records what it was asked for.
type fakeSampler struct {
	records []question.Record
	subject string
	count   int
}

func (f *fakeSampler) Sample(_ context.Context, subject string, count int) ([]question.Record, error) {
	f.subject = subject
	f.count = count
	return f.records, nil
}

func record(text string, correct int, explanation string) question.Record {
	return question.Record{
		Level:       "easy",
		Subject:     "math",
		Text:        text,
		Options:     [4]string{"w", "x", "y", "z"},
		Correct:     correct,
		Explanation: explanation,
	}
}

func run(t *testing.T, records []question.Record, input string) (Summary, string, *fakeSampler) {
	t.Helper()
	sampler := &fakeSampler{records: records}
	var out bytes.Buffer
	r := &Runner{Sampler: sampler, In: strings.NewReader(input), Out: &out}
	sum, err := r.Run(context.Background(), "math", len(records))
	require.NoError(t, err)
	return sum, out.String(), sampler
}

func TestRunScoresCorrectAnswers(t *testing.T) {
	records := []question.Record{
		record("First?", 2, "two"),
		record("Second?", 4, "four"),
	}

	sum, out, sampler := run(t, records, "2\n1\n")

	require.Equal(t, Summary{Score: 1, Total: 2}, sum)
	require.Equal(t, "math", sampler.subject)
	require.Equal(t, 2, sampler.count)

	require.Contains(t, out, "First?")
	require.Contains(t, out, "1) w")
	require.Contains(t, out, "4) z")
	require.Contains(t, out, "Correct!")
	require.Contains(t, out, "Incorrect. four")
	require.Contains(t, out, "Result: 1/2 correct")
}

func TestRunNonNumericInputIsWrong(t *testing.T) {
	records := []question.Record{record("Q?", 1, "why")}

	sum, out, _ := run(t, records, "banana\n")

	require.Equal(t, Summary{Score: 0, Total: 1}, sum)
	require.Contains(t, out, "Incorrect. why")
}

// A question imported without a recognized answer letter stores
// correct=0. No response can match it, including the coerced 0 from
// malformed input.
func TestRunUnansweredQuestionNeverMatches(t *testing.T) {
	records := []question.Record{record("Q?", 0, "")}

	sum, out, _ := run(t, records, "oops\n")

	require.Equal(t, Summary{Score: 0, Total: 1}, sum)
	require.Contains(t, out, "Incorrect.")
}

func TestRunEmptySample(t *testing.T) {
	sum, out, _ := run(t, nil, "")

	require.Equal(t, Summary{}, sum)
	require.Contains(t, out, "No questions available.")
	require.NotContains(t, out, "Result:")
}

func TestRunExhaustedInput(t *testing.T) {
	records := []question.Record{
		record("First?", 1, "e1"),
		record("Second?", 2, "e2"),
	}

	// Input runs dry after the first answer; the rest coerce to 0.
	sum, _, _ := run(t, records, "1\n")

	require.Equal(t, Summary{Score: 1, Total: 2}, sum)
}

func TestRunEmptyExplanationOmitted(t *testing.T) {
	records := []question.Record{record("Q?", 3, "")}

	_, out, _ := run(t, records, "1\n")

	require.Contains(t, out, "Incorrect.")
	require.NotContains(t, out, "Incorrect. ")
}
