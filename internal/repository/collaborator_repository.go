package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uta-diee/practicas-api/internal/models"
)

// CollaboratorRepository manages persistence for center-side staff.
type CollaboratorRepository struct {
	db *sqlx.DB
}

// NewCollaboratorRepository constructs a CollaboratorRepository.
func NewCollaboratorRepository(db *sqlx.DB) *CollaboratorRepository {
	return &CollaboratorRepository{db: db}
}

const collaboratorColumns = `id, rut, nombre, correo, fono, created_at, updated_at`

// Create inserts a collaborator.
func (r *CollaboratorRepository) Create(ctx context.Context, collaborator *models.Collaborator) error {
	if collaborator.ID == "" {
		collaborator.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	collaborator.CreatedAt = now
	collaborator.UpdatedAt = now
	const query = `INSERT INTO collaborators (id, rut, nombre, correo, fono, created_at, updated_at)
        VALUES (:id, :rut, :nombre, :correo, :fono, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, collaborator); err != nil {
		return fmt.Errorf("insert collaborator: %w", err)
	}
	return nil
}

// FindByID fetches one collaborator.
func (r *CollaboratorRepository) FindByID(ctx context.Context, id string) (*models.Collaborator, error) {
	query := fmt.Sprintf(`SELECT %s FROM collaborators WHERE id = $1`, collaboratorColumns)
	var collaborator models.Collaborator
	if err := r.db.GetContext(ctx, &collaborator, query, id); err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// FindByRut fetches one collaborator by RUT.
func (r *CollaboratorRepository) FindByRut(ctx context.Context, rut string) (*models.Collaborator, error) {
	query := fmt.Sprintf(`SELECT %s FROM collaborators WHERE rut = $1`, collaboratorColumns)
	var collaborator models.Collaborator
	if err := r.db.GetContext(ctx, &collaborator, query, rut); err != nil {
		return nil, err
	}
	return &collaborator, nil
}

// List returns all collaborators ordered by name.
func (r *CollaboratorRepository) List(ctx context.Context) ([]models.Collaborator, error) {
	query := fmt.Sprintf(`SELECT %s FROM collaborators ORDER BY nombre ASC`, collaboratorColumns)
	var collaborators []models.Collaborator
	if err := r.db.SelectContext(ctx, &collaborators, query); err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	return collaborators, nil
}

// ListCatalog returns the id+name projection of every collaborator.
func (r *CollaboratorRepository) ListCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	var entries []models.CatalogEntry
	if err := r.db.SelectContext(ctx, &entries, `SELECT id, nombre FROM collaborators ORDER BY nombre ASC`); err != nil {
		return nil, fmt.Errorf("list collaborator catalog: %w", err)
	}
	return entries, nil
}

// Update rewrites a collaborator's mutable fields.
func (r *CollaboratorRepository) Update(ctx context.Context, collaborator *models.Collaborator) error {
	collaborator.UpdatedAt = time.Now().UTC()
	const query = `UPDATE collaborators SET rut = :rut, nombre = :nombre, correo = :correo, fono = :fono, updated_at = :updated_at WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, collaborator)
	if err != nil {
		return fmt.Errorf("update collaborator: %w", err)
	}
	return requireAffected(result, "collaborator")
}

// Delete removes a collaborator.
func (r *CollaboratorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM collaborators WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete collaborator: %w", err)
	}
	return requireAffected(result, "collaborator")
}

// CountExisting reports how many of the given ids are present. Used to
// validate association lists before creating a practice.
func (r *CollaboratorRepository) CountExisting(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`SELECT COUNT(id) FROM collaborators WHERE id IN (?)`, ids)
	if err != nil {
		return 0, fmt.Errorf("build collaborator count query: %w", err)
	}
	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("count collaborators: %w", err)
	}
	return count, nil
}
