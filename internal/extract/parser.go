// Package extract turns flat document text into question records.
//
// The input convention is line oriented: a question opens with a
// single-digit number ("1. ..."), its options follow as "A)".."D)"
// lines, and "Answer:" / "Explanation:" lines annotate it. Anything
// else continues the question text. There is no schema beyond that.
package extract

import (
	"strings"

	"github.com/mahued73/examapp/internal/question"
)

// Result summarizes one extraction pass.
type Result struct {
	Records []question.Record
	Dropped int // blocks discarded for not having exactly 4 options
}

// Parse scans text line by line and returns the questions it finds,
// in document order. Level and subject apply to the whole document;
// they are caller metadata, never parsed from the text.
//
// A block is only emitted when exactly four option lines were seen;
// anything else is dropped without error. An unrecognized answer
// letter leaves Correct at 0.
func Parse(text, level, subject string) Result {
	var res Result
	var acc accumulator

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case isQuestionStart(line):
			acc.finalizeInto(&res, level, subject)
			acc = accumulator{open: true, text: line[3:]}

		case isOptionLine(line):
			if acc.open {
				acc.options = append(acc.options, strings.TrimSpace(line[2:]))
			}

		case strings.HasPrefix(line, "Answer:"):
			if acc.open {
				letter := strings.ToUpper(strings.TrimSpace(afterColon(line)))
				acc.correct = question.CorrectFromLetter(letter)
			}

		case strings.HasPrefix(line, "Explanation:"):
			if acc.open {
				acc.explanation = strings.TrimSpace(afterColon(line))
			}

		default:
			// Continuation, or stray text before the first question.
			if acc.open {
				acc.text += " " + line
			}
		}
	}

	acc.finalizeInto(&res, level, subject)
	return res
}

// accumulator holds the question currently being built. The zero
// value means no question is open.
type accumulator struct {
	open        bool
	text        string
	options     []string
	correct     int
	explanation string
}

// finalizeInto emits the open question if it accumulated exactly four
// options, and counts it as dropped otherwise. A closed accumulator
// is a no-op.
func (a *accumulator) finalizeInto(res *Result, level, subject string) {
	if !a.open {
		return
	}
	if len(a.options) != question.OptionCount {
		res.Dropped++
		return
	}
	rec := question.Record{
		Level:       level,
		Subject:     subject,
		Text:        a.text,
		Correct:     a.correct,
		Explanation: a.explanation,
	}
	copy(rec.Options[:], a.options)
	res.Records = append(res.Records, rec)
}

// isQuestionStart reports whether line opens a new question. Only the
// first three bytes are inspected: one ASCII digit, a period, a space.
// Multi-digit numbering ("10. ") deliberately does not match and falls
// through to the continuation case.
func isQuestionStart(line string) bool {
	return len(line) >= 3 && line[0] >= '0' && line[0] <= '9' && line[1] == '.' && line[2] == ' '
}

func isOptionLine(line string) bool {
	return strings.HasPrefix(line, "A)") ||
		strings.HasPrefix(line, "B)") ||
		strings.HasPrefix(line, "C)") ||
		strings.HasPrefix(line, "D)")
}

// afterColon returns everything past the first colon.
func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return rest
}
