package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/saarthi-app/saarthi/internal/domain"
)

// AssignmentRepository implements domain.AssignmentRepository using SQLite.
type AssignmentRepository struct {
	db *sql.DB
}

func (r *AssignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO assignments (user_id, title, subject, due_date, status, priority, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.UserID, a.Title, a.Subject, nullableTime(a.DueDate), a.Status, a.Priority, a.Description, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	a.ID = id
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	a := &domain.Assignment{}
	var due sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, subject, due_date, status, priority, description, created_at, updated_at
		 FROM assignments WHERE id = ?`, id,
	).Scan(&a.ID, &a.UserID, &a.Title, &a.Subject, &due, &a.Status, &a.Priority, &a.Description, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query assignment by id: %w", err)
	}
	if due.Valid {
		a.DueDate = &due.Time
	}
	return a, nil
}

func (r *AssignmentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, subject, due_date, status, priority, description, created_at, updated_at
		 FROM assignments WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query assignments by user: %w", err)
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var due sql.NullTime
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Subject, &due, &a.Status, &a.Priority, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		if due.Valid {
			a.DueDate = &due.Time
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Update rewrites the mutable columns of an assignment in a single statement
// conditioned on both id and owner. Returns domain.ErrNotFound when no row
// matched the predicate.
func (r *AssignmentRepository) Update(ctx context.Context, a *domain.Assignment) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE assignments
		 SET title = ?, subject = ?, due_date = ?, status = ?, priority = ?, description = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		a.Title, a.Subject, nullableTime(a.DueDate), a.Status, a.Priority, a.Description, now, a.ID, a.UserID,
	)
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	a.UpdatedAt = now
	return nil
}

// Delete removes an assignment in a single statement conditioned on both id
// and owner. Returns domain.ErrNotFound when no row matched the predicate.
func (r *AssignmentRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM assignments WHERE id = ? AND user_id = ?`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
