package store

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/mahued73/examapp/internal/question"
)

const recordColumns = "id, level, subject, text, option1, option2, option3, option4, correct, explanation"

// Append durably inserts one record and fills in its store-assigned ID.
func (s *Store) Append(ctx context.Context, rec *question.Record) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO questions
		(level, subject, text, option1, option2, option3, option4, correct, explanation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Level, rec.Subject, rec.Text,
		rec.Options[0], rec.Options[1], rec.Options[2], rec.Options[3],
		rec.Correct, rec.Explanation,
	)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	rec.ID = id
	return nil
}

// Sample returns up to count records in uniformly random order. An
// empty subject matches every record; otherwise only records with
// exactly that subject are candidates. When fewer candidates exist
// than count, all of them are returned.
func (s *Store) Sample(ctx context.Context, subject string, count int) ([]question.Record, error) {
	if count <= 0 {
		return nil, nil
	}

	query := "SELECT " + recordColumns + " FROM questions"
	var args []any
	if subject != "" {
		query += " WHERE subject = ?"
		args = append(args, subject)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var candidates []question.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	// Unbiased shuffle, then truncate. Never re-sorted afterwards.
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates, nil
}

// BankCount is the number of stored questions for one subject/level pair.
type BankCount struct {
	Subject string
	Level   string
	Count   int
}

// Counts reports how many questions each subject/level pair holds,
// ordered for stable display.
func (s *Store) Counts(ctx context.Context) ([]BankCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subject, level, COUNT(*)
		FROM questions
		GROUP BY subject, level
		ORDER BY subject, level`)
	if err != nil {
		return nil, fmt.Errorf("count questions: %w", err)
	}
	defer rows.Close()

	var counts []BankCount
	for rows.Next() {
		var c BankCount
		if err := rows.Scan(&c.Subject, &c.Level, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (question.Record, error) {
	var rec question.Record
	// explanation is the one nullable column in the schema.
	var explanation *string
	err := sc.Scan(
		&rec.ID, &rec.Level, &rec.Subject, &rec.Text,
		&rec.Options[0], &rec.Options[1], &rec.Options[2], &rec.Options[3],
		&rec.Correct, &explanation,
	)
	if err != nil {
		return question.Record{}, fmt.Errorf("scan question: %w", err)
	}
	if explanation != nil {
		rec.Explanation = *explanation
	}
	return rec, nil
}
