package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uta-diee/practicas-api/internal/models"
)

// TutorRepository manages persistence for university-side tutors.
type TutorRepository struct {
	db *sqlx.DB
}

// NewTutorRepository constructs a TutorRepository.
func NewTutorRepository(db *sqlx.DB) *TutorRepository {
	return &TutorRepository{db: db}
}

const tutorColumns = `id, rut, nombre, correo, fono, created_at, updated_at`

// Create inserts a tutor.
func (r *TutorRepository) Create(ctx context.Context, tutor *models.Tutor) error {
	if tutor.ID == "" {
		tutor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	tutor.CreatedAt = now
	tutor.UpdatedAt = now
	const query = `INSERT INTO tutors (id, rut, nombre, correo, fono, created_at, updated_at)
        VALUES (:id, :rut, :nombre, :correo, :fono, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, tutor); err != nil {
		return fmt.Errorf("insert tutor: %w", err)
	}
	return nil
}

// FindByID fetches one tutor.
func (r *TutorRepository) FindByID(ctx context.Context, id string) (*models.Tutor, error) {
	query := fmt.Sprintf(`SELECT %s FROM tutors WHERE id = $1`, tutorColumns)
	var tutor models.Tutor
	if err := r.db.GetContext(ctx, &tutor, query, id); err != nil {
		return nil, err
	}
	return &tutor, nil
}

// List returns all tutors ordered by name.
func (r *TutorRepository) List(ctx context.Context) ([]models.Tutor, error) {
	query := fmt.Sprintf(`SELECT %s FROM tutors ORDER BY nombre ASC`, tutorColumns)
	var tutors []models.Tutor
	if err := r.db.SelectContext(ctx, &tutors, query); err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	return tutors, nil
}

// ListCatalog returns the id+name projection of every tutor.
func (r *TutorRepository) ListCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	var entries []models.CatalogEntry
	if err := r.db.SelectContext(ctx, &entries, `SELECT id, nombre FROM tutors ORDER BY nombre ASC`); err != nil {
		return nil, fmt.Errorf("list tutor catalog: %w", err)
	}
	return entries, nil
}

// Update rewrites a tutor's mutable fields.
func (r *TutorRepository) Update(ctx context.Context, tutor *models.Tutor) error {
	tutor.UpdatedAt = time.Now().UTC()
	const query = `UPDATE tutors SET rut = :rut, nombre = :nombre, correo = :correo, fono = :fono, updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, tutor)
	if err != nil {
		return fmt.Errorf("update tutor: %w", err)
	}
	return requireAffected(result, "tutor")
}

// Delete removes a tutor.
func (r *TutorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tutors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tutor: %w", err)
	}
	return requireAffected(result, "tutor")
}

// CountExisting reports how many of the given ids are present.
func (r *TutorRepository) CountExisting(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`SELECT COUNT(id) FROM tutors WHERE id IN (?)`, ids)
	if err != nil {
		return 0, fmt.Errorf("build tutor count query: %w", err)
	}
	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("count tutors: %w", err)
	}
	return count, nil
}
