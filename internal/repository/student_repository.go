package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/uta-diee/practicas-api/internal/models"
)

// StudentRepository manages persistence for practicum students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a student keyed by RUT.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	const query = `INSERT INTO students (rut, nombre, email, fono, created_at, updated_at)
        VALUES (:rut, :nombre, :email, :fono, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

// FindByRut fetches one student.
func (r *StudentRepository) FindByRut(ctx context.Context, rut string) (*models.Student, error) {
	const query = `SELECT rut, nombre, email, fono, created_at, updated_at FROM students WHERE rut = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, rut); err != nil {
		return nil, err
	}
	return &student, nil
}

// List returns all students ordered by name.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT rut, nombre, email, fono, created_at, updated_at FROM students ORDER BY nombre ASC`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Update rewrites a student's mutable fields.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const query = `UPDATE students SET nombre = :nombre, email = :email, fono = :fono, updated_at = :updated_at WHERE rut = :rut`
	result, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return requireAffected(result, "student")
}

// Delete removes a student.
func (r *StudentRepository) Delete(ctx context.Context, rut string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE rut = $1`, rut)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return requireAffected(result, "student")
}

// ListCatalog returns rut+name pairs for select inputs.
func (r *StudentRepository) ListCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	const query = `SELECT rut AS id, nombre FROM students ORDER BY nombre ASC LIMIT 1000`
	var entries []models.CatalogEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list student catalog: %w", err)
	}
	return entries, nil
}

// Exists probes for a student by RUT.
func (r *StudentRepository) Exists(ctx context.Context, rut string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM students WHERE rut = $1`, rut); err != nil {
		return false, fmt.Errorf("probe student: %w", err)
	}
	return count > 0, nil
}
