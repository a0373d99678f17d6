package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
)

type PostgresContestRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresContestRepo(pool *pgxpool.Pool, timeout time.Duration) *PostgresContestRepo {
	return &PostgresContestRepo{pool: pool, timeout: timeout}
}

const contestColumns = "id, name, status, question_ids, assigned_users, created_at"

func scanContest(row pgx.Row) (*models.Contest, error) {
	var contest models.Contest
	err := row.Scan(
		&contest.ID,
		&contest.Name,
		&contest.Status,
		&contest.QuestionIDs,
		&contest.AssignedUsers,
		&contest.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contest, nil
}

func (r *PostgresContestRepo) Create(ctx context.Context, contest *models.Contest) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO contests (id, name, status, question_ids, assigned_users, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, contest.ID, contest.Name, contest.Status, contest.QuestionIDs, contest.AssignedUsers, contest.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create contest: %w", err)
	}
	return nil
}

func (r *PostgresContestRepo) List(ctx context.Context) ([]models.Contest, error) {
	return r.query(ctx, "SELECT "+contestColumns+" FROM contests ORDER BY created_at")
}

func (r *PostgresContestRepo) GetByID(ctx context.Context, id string) (*models.Contest, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, "SELECT "+contestColumns+" FROM contests WHERE id = $1", id)
	return scanContest(row)
}

func (r *PostgresContestRepo) UpdateStatus(ctx context.Context, id string, status models.ContestStatus) (*models.Contest, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE contests SET status = $1 WHERE id = $2
		RETURNING `+contestColumns, status, id)
	return scanContest(row)
}

func (r *PostgresContestRepo) UpdateAssignedUsers(ctx context.Context, id string, userIDs []string) (*models.Contest, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE contests SET assigned_users = $1 WHERE id = $2
		RETURNING `+contestColumns, userIDs, id)
	return scanContest(row)
}

func (r *PostgresContestRepo) ListAssigned(ctx context.Context, userID string, status models.ContestStatus) ([]models.Contest, error) {
	return r.query(ctx, `
		SELECT `+contestColumns+` FROM contests
		WHERE status = $1 AND $2 = ANY(assigned_users)
		ORDER BY created_at
	`, status, userID)
}

func (r *PostgresContestRepo) query(ctx context.Context, sql string, args ...any) ([]models.Contest, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list contests: %w", err)
	}
	defer rows.Close()

	contests := []models.Contest{}
	for rows.Next() {
		contest, err := scanContest(rows)
		if err != nil {
			return nil, err
		}
		contests = append(contests, *contest)
	}
	return contests, rows.Err()
}
