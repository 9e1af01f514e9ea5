// Package question defines the record type shared by the importers,
// the store, and the evaluation loop.
package question

// OptionCount is the number of options every stored question carries.
const OptionCount = 4

// Record is one multiple-choice question. Options are positional:
// Options[0] is option 1, answered with "1" in the quiz.
//
// Correct is 1-based into Options. Zero means no answer letter was
// recognized when the question was imported; such a question is stored
// and asked, but no response can ever match it.
type Record struct {
	ID          int64
	Level       string
	Subject     string
	Text        string
	Options     [OptionCount]string
	Correct     int
	Explanation string
}

// CorrectFromLetter maps an answer letter to a 1-based option index.
// Unrecognized letters map to 0.
func CorrectFromLetter(letter string) int {
	switch letter {
	case "A":
		return 1
	case "B":
		return 2
	case "C":
		return 3
	case "D":
		return 4
	default:
		return 0
	}
}
