package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
)

type PostgresQuestionRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresQuestionRepo(pool *pgxpool.Pool, timeout time.Duration) *PostgresQuestionRepo {
	return &PostgresQuestionRepo{pool: pool, timeout: timeout}
}

func (r *PostgresQuestionRepo) Insert(ctx context.Context, question *models.Question) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO questions (id, module, question_text, options, correct_option_index, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, question.ID, question.Module, question.Text, question.Options, question.CorrectOptionIndex, question.Difficulty)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

func (r *PostgresQuestionRepo) CountByIDs(ctx context.Context, ids []string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var n int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM questions WHERE id = ANY($1)", ids).Scan(&n)
	return n, err
}
