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

// CenterRepository manages persistence for educational centers.
type CenterRepository struct {
	db *sqlx.DB
}

// NewCenterRepository constructs a CenterRepository.
func NewCenterRepository(db *sqlx.DB) *CenterRepository {
	return &CenterRepository{db: db}
}

const centerColumns = `id, nombre, tipo, region, comuna, direccion, telefono, correo, convenio, url_rrss, association_start, created_at, updated_at`

// Create inserts a center.
func (r *CenterRepository) Create(ctx context.Context, center *models.Center) error {
	if center.ID == "" {
		center.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	center.CreatedAt = now
	center.UpdatedAt = now
	const query = `INSERT INTO centers (id, nombre, tipo, region, comuna, direccion, telefono, correo, convenio, url_rrss, association_start, created_at, updated_at)
        VALUES (:id, :nombre, :tipo, :region, :comuna, :direccion, :telefono, :correo, :convenio, :url_rrss, :association_start, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, center); err != nil {
		return fmt.Errorf("insert center: %w", err)
	}
	return nil
}

// FindByID fetches one center.
func (r *CenterRepository) FindByID(ctx context.Context, id string) (*models.Center, error) {
	query := fmt.Sprintf(`SELECT %s FROM centers WHERE id = $1`, centerColumns)
	var center models.Center
	if err := r.db.GetContext(ctx, &center, query, id); err != nil {
		return nil, err
	}
	return &center, nil
}

// List returns a filtered, paginated page of centers with its total.
func (r *CenterRepository) List(ctx context.Context, filter models.CenterFilter) ([]models.Center, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.Tipo != "" {
		conditions = append(conditions, fmt.Sprintf("tipo = $%d", len(args)+1))
		args = append(args, filter.Tipo)
	}
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(nombre) LIKE $%d OR LOWER(COALESCE(comuna, '')) LIKE $%d OR LOWER(COALESCE(region, '')) LIKE $%d OR LOWER(COALESCE(correo, '')) LIKE $%d OR LOWER(COALESCE(convenio, '')) LIKE $%d)",
			idx, idx, idx, idx, idx))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	where := strings.Join(conditions, " AND ")

	allowedSorts := map[string]string{
		"nombre":     "nombre",
		"tipo":       "tipo",
		"created_at": "created_at",
	}
	column, ok := allowedSorts[filter.SortBy]
	if !ok {
		column = "nombre"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 10
	}

	query := fmt.Sprintf("SELECT %s FROM centers WHERE %s ORDER BY %s %s LIMIT %d OFFSET %d",
		centerColumns, where, column, order, size, (page-1)*size)
	var centers []models.Center
	if err := r.db.SelectContext(ctx, &centers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list centers: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(id) FROM centers WHERE %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count centers: %w", err)
	}
	return centers, total, nil
}

// ListCatalog returns the id+name projection of every center.
func (r *CenterRepository) ListCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	var entries []models.CatalogEntry
	if err := r.db.SelectContext(ctx, &entries, `SELECT id, nombre FROM centers ORDER BY nombre ASC`); err != nil {
		return nil, fmt.Errorf("list center catalog: %w", err)
	}
	return entries, nil
}

// Update rewrites a center's mutable fields.
func (r *CenterRepository) Update(ctx context.Context, center *models.Center) error {
	center.UpdatedAt = time.Now().UTC()
	const query = `UPDATE centers SET nombre = :nombre, tipo = :tipo, region = :region, comuna = :comuna,
        direccion = :direccion, telefono = :telefono, correo = :correo, convenio = :convenio,
        url_rrss = :url_rrss, association_start = :association_start, updated_at = :updated_at
        WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, center)
	if err != nil {
		return fmt.Errorf("update center: %w", err)
	}
	return requireAffected(result, "center")
}

// Delete removes a center.
func (r *CenterRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM centers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete center: %w", err)
	}
	return requireAffected(result, "center")
}

// Exists probes for a center by id.
func (r *CenterRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM centers WHERE id = $1`, id); err != nil {
		return false, fmt.Errorf("probe center: %w", err)
	}
	return count > 0, nil
}
