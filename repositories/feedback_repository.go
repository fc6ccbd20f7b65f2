package repositories

import (
	"context"
	"errors"
	"fmt"

	"bakery-shop/config"
	"bakery-shop/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type FeedbackRepository interface {
	Create(ctx context.Context, f *models.FeedbackSubmission) error
	List(ctx context.Context) ([]models.FeedbackSubmission, error)
}

type PostgresFeedbackRepository struct {
	db *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

// Create inserts a submission. A second submission from the same email is
// rejected by the primary key and reported as models.ErrDuplicateFeedback.
func (r *PostgresFeedbackRepository) Create(ctx context.Context, f *models.FeedbackSubmission) error {
	err := config.WithConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(ctx,
			`INSERT INTO feedback (email, name, message) VALUES ($1, $2, $3) RETURNING created_at`,
			f.Email, f.Name, f.Message,
		).Scan(&f.CreatedAt)
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return models.ErrDuplicateFeedback
	}
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

func (r *PostgresFeedbackRepository) List(ctx context.Context) ([]models.FeedbackSubmission, error) {
	submissions := []models.FeedbackSubmission{}
	err := config.WithConn(ctx, r.db, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx,
			"SELECT email, name, message, created_at FROM feedback ORDER BY created_at DESC")
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var f models.FeedbackSubmission
			if err := rows.Scan(&f.Email, &f.Name, &f.Message, &f.CreatedAt); err != nil {
				return err
			}
			submissions = append(submissions, f)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return submissions, nil
}
