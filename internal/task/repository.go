package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"todo-backend/internal/database"
)

var ErrNotFound = errors.New("task not found")

// Store defines the task persistence operations the handlers need.
type Store interface {
	List(ctx context.Context, ownerID string) ([]Task, error)
	Create(ctx context.Context, ownerID, title string, description *string) (*Task, error)
	Get(ctx context.Context, id int64) (*Task, error)
	Update(ctx context.Context, id int64, title string, description *string, completed bool) (*Task, error)
	Delete(ctx context.Context, id int64) error
	ToggleCompletion(ctx context.Context, id int64) (*Task, error)
}

// Repository handles task persistence on Postgres
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// List returns all tasks whose stored owner field equals ownerID, in
// insertion order.
func (r *Repository) List(ctx context.Context, ownerID string) ([]Task, error) {
	var dbTasks []database.Task
	err := r.db.NewSelect().
		Model(&dbTasks).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]Task, 0, len(dbTasks))
	for i := range dbTasks {
		tasks = append(tasks, *mapDBTaskToModel(&dbTasks[i]))
	}

	return tasks, nil
}

// Create inserts a new task. The owner field is forced to ownerID no matter
// what the caller received from the client; this is the tamper-prevention
// rule for the whole system.
func (r *Repository) Create(ctx context.Context, ownerID, title string, description *string) (*Task, error) {
	dbTask := &database.Task{
		UserID:      ownerID,
		Title:       title,
		Description: description,
	}

	_, err := r.db.NewInsert().
		Model(dbTask).
		Returning("*").
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// Get fetches a task by id alone, with no owner filter. Callers must apply
// the ownership check themselves; the unfiltered fetch is what lets them
// tell NotFound from Forbidden.
func (r *Repository) Get(ctx context.Context, id int64) (*Task, error) {
	dbTask := new(database.Task)
	err := r.db.NewSelect().
		Model(dbTask).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return mapDBTaskToModel(dbTask), nil
}

// Update replaces the three mutable fields and refreshes updated_at,
// whether or not the values actually changed.
func (r *Repository) Update(ctx context.Context, id int64, title string, description *string, completed bool) (*Task, error) {
	dbTask := new(database.Task)
	res, err := r.db.NewUpdate().
		Model(dbTask).
		Set("title = ?", title).
		Set("description = ?", description).
		Set("completed = ?", completed).
		Set("updated_at = now()").
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if affected, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	} else if affected == 0 {
		return nil, ErrNotFound
	}

	return mapDBTaskToModel(dbTask), nil
}

// Delete removes a task permanently
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.NewDelete().
		Model((*database.Task)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if affected, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ToggleCompletion flips the completed flag and refreshes updated_at. A
// single UPDATE statement, so the flip is atomic with respect to concurrent
// requests on the same row.
func (r *Repository) ToggleCompletion(ctx context.Context, id int64) (*Task, error) {
	dbTask := new(database.Task)
	res, err := r.db.NewUpdate().
		Model(dbTask).
		Set("completed = NOT completed").
		Set("updated_at = now()").
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to toggle task completion: %w", err)
	}

	if affected, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	} else if affected == 0 {
		return nil, ErrNotFound
	}

	return mapDBTaskToModel(dbTask), nil
}

// mapDBTaskToModel converts database model to domain model
func mapDBTaskToModel(dbt *database.Task) *Task {
	return &Task{
		ID:          dbt.ID,
		UserID:      dbt.UserID,
		Title:       dbt.Title,
		Description: dbt.Description,
		Completed:   dbt.Completed,
		CreatedAt:   dbt.CreatedAt,
		UpdatedAt:   dbt.UpdatedAt,
	}
}
