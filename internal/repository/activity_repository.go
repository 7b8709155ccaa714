package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uta-diee/practicas-api/internal/models"
)

// ActivityRepository manages persistence for practice activities.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs an ActivityRepository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = `id, title, place, schedule, students, date, month, evidence_path, created_at, updated_at`

// Create inserts an activity.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	const query = `INSERT INTO activities (id, title, place, schedule, students, date, month, evidence_path, created_at, updated_at)
        VALUES (:id, :title, :place, :schedule, :students, :date, :month, :evidence_path, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, activity); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// FindByID fetches one activity.
func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*models.Activity, error) {
	query := fmt.Sprintf(`SELECT %s FROM activities WHERE id = $1`, activityColumns)
	var activity models.Activity
	if err := r.db.GetContext(ctx, &activity, query, id); err != nil {
		return nil, err
	}
	return &activity, nil
}

// List returns a filtered, paginated page of activities with its total,
// newest first.
func (r *ActivityRepository) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.Month != "" {
		conditions = append(conditions, fmt.Sprintf("month = $%d", len(args)+1))
		args = append(args, filter.Month)
	}
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(LOWER(title) LIKE $%d OR LOWER(place) LIKE $%d)", idx, idx))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	where := strings.Join(conditions, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 10
	}

	query := fmt.Sprintf("SELECT %s FROM activities WHERE %s ORDER BY date DESC LIMIT %d OFFSET %d",
		activityColumns, where, size, (page-1)*size)
	var activities []models.Activity
	if err := r.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list activities: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(id) FROM activities WHERE %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count activities: %w", err)
	}
	return activities, total, nil
}

// Update rewrites an activity's mutable fields.
func (r *ActivityRepository) Update(ctx context.Context, activity *models.Activity) error {
	activity.UpdatedAt = time.Now().UTC()
	const query = `UPDATE activities SET title = :title, place = :place, schedule = :schedule, students = :students,
        date = :date, month = :month, evidence_path = :evidence_path, updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, activity)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return requireAffected(result, "activity")
}

// SetEvidencePath stores the path of an uploaded evidence file.
func (r *ActivityRepository) SetEvidencePath(ctx context.Context, id, path string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE activities SET evidence_path = $2, updated_at = $3 WHERE id = $1`,
		id, path, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set activity evidence: %w", err)
	}
	return requireAffected(result, "activity")
}

// Delete removes an activity.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return requireAffected(result, "activity")
}
