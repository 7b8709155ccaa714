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

// PracticeRepository manages persistence for practice placements and
// their collaborator/tutor associations.
type PracticeRepository struct {
	db *sqlx.DB
}

// NewPracticeRepository constructs a PracticeRepository.
func NewPracticeRepository(db *sqlx.DB) *PracticeRepository {
	return &PracticeRepository{db: db}
}

// ListActivePeriods returns the periods of a student's EN_CURSO practices.
func (r *PracticeRepository) ListActivePeriods(ctx context.Context, studentRut string) ([]models.PracticePeriod, error) {
	const query = `SELECT id, start_date, end_date FROM practices WHERE student_rut = $1 AND status = $2`
	var periods []models.PracticePeriod
	if err := r.db.SelectContext(ctx, &periods, query, studentRut, models.PracticeStatusInProgress); err != nil {
		return nil, fmt.Errorf("list active periods: %w", err)
	}
	return periods, nil
}

// Create inserts a practice plus its association rows in one transaction.
// roles must be aligned with tutorIDs.
func (r *PracticeRepository) Create(ctx context.Context, practice *models.Practice, collaboratorIDs, tutorIDs, roles []string) error {
	if practice.ID == "" {
		practice.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	practice.CreatedAt = now
	practice.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin practice tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertPractice = `INSERT INTO practices (id, student_rut, center_id, start_date, end_date, type, status, created_at, updated_at)
        VALUES (:id, :student_rut, :center_id, :start_date, :end_date, :type, :status, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, insertPractice, practice); err != nil {
		return fmt.Errorf("insert practice: %w", err)
	}

	const insertCollaborator = `INSERT INTO practice_collaborators (id, practice_id, collaborator_id) VALUES ($1, $2, $3)`
	for _, collaboratorID := range collaboratorIDs {
		if _, err := tx.ExecContext(ctx, insertCollaborator, uuid.NewString(), practice.ID, collaboratorID); err != nil {
			return fmt.Errorf("insert practice collaborator: %w", err)
		}
	}

	const insertTutor = `INSERT INTO practice_tutors (id, practice_id, tutor_id, role) VALUES ($1, $2, $3, $4)`
	for i, tutorID := range tutorIDs {
		role := models.TutorRoleSupervisor
		if i < len(roles) && roles[i] != "" {
			role = roles[i]
		}
		if _, err := tx.ExecContext(ctx, insertTutor, uuid.NewString(), practice.ID, tutorID, role); err != nil {
			return fmt.Errorf("insert practice tutor: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit practice tx: %w", err)
	}
	return nil
}

const practiceDetailColumns = `p.id, p.student_rut, p.center_id, p.start_date, p.end_date, p.type, p.status, p.created_at, p.updated_at,
        s.nombre AS student_name, c.nombre AS center_name, c.tipo AS center_type`

// FindByID fetches a practice with its associations.
func (r *PracticeRepository) FindByID(ctx context.Context, id string) (*models.PracticeDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM practices p
        JOIN students s ON s.rut = p.student_rut
        JOIN centers c ON c.id = p.center_id
        WHERE p.id = $1`, practiceDetailColumns)
	var detail models.PracticeDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	if err := r.attachAssociations(ctx, []*models.PracticeDetail{&detail}); err != nil {
		return nil, err
	}
	return &detail, nil
}

// List returns practices matching status / student filters ordered by
// start date descending.
func (r *PracticeRepository) List(ctx context.Context, filter models.PracticeFilter) ([]models.PracticeDetail, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.StudentRut != "" {
		conditions = append(conditions, fmt.Sprintf("p.student_rut = $%d", len(args)+1))
		args = append(args, filter.StudentRut)
	}

	query := fmt.Sprintf(`SELECT %s FROM practices p
        JOIN students s ON s.rut = p.student_rut
        JOIN centers c ON c.id = p.center_id
        WHERE %s ORDER BY p.start_date DESC`, practiceDetailColumns, strings.Join(conditions, " AND "))

	var details []models.PracticeDetail
	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, fmt.Errorf("list practices: %w", err)
	}
	refs := make([]*models.PracticeDetail, len(details))
	for i := range details {
		refs[i] = &details[i]
	}
	if err := r.attachAssociations(ctx, refs); err != nil {
		return nil, err
	}
	return details, nil
}

// ListBoard returns the management board page with its total count.
func (r *PracticeRepository) ListBoard(ctx context.Context, filter models.PracticeBoardFilter) ([]models.PracticeDetail, int, error) {
	base := `FROM practices p
        JOIN students s ON s.rut = p.student_rut
        JOIN centers c ON c.id = p.center_id`
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("p.type = $%d", len(args)+1))
		args = append(args, filter.Type)
	}
	if filter.CenterID != "" {
		conditions = append(conditions, fmt.Sprintf("p.center_id = $%d", len(args)+1))
		args = append(args, filter.CenterID)
	}
	if filter.CollaboratorID != "" {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM practice_collaborators pc WHERE pc.practice_id = p.id AND pc.collaborator_id = $%d)", len(args)+1))
		args = append(args, filter.CollaboratorID)
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("p.start_date >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("p.start_date <= $%d", len(args)+1))
		args = append(args, *filter.To)
	}
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(LOWER(s.nombre) LIKE $%d OR LOWER(c.nombre) LIKE $%d OR LOWER(COALESCE(p.type, '')) LIKE $%d)", idx, idx, idx))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	base = fmt.Sprintf("%s WHERE %s", base, strings.Join(conditions, " AND "))

	allowedSorts := map[string]string{
		"start_date": "p.start_date",
		"created_at": "p.created_at",
		"updated_at": "p.updated_at",
		"status":     "p.status",
		"type":       "p.type",
	}
	column, ok := allowedSorts[filter.SortBy]
	if !ok {
		column = "p.start_date"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 10
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT %d OFFSET %d",
		practiceDetailColumns, base, column, order, size, offset)

	var details []models.PracticeDetail
	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list board practices: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(p.id) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count board practices: %w", err)
	}

	refs := make([]*models.PracticeDetail, len(details))
	for i := range details {
		refs[i] = &details[i]
	}
	if err := r.attachAssociations(ctx, refs); err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// UpdateStatus changes the lifecycle state of a practice.
func (r *PracticeRepository) UpdateStatus(ctx context.Context, id, status string) error {
	const query = `UPDATE practices SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status, time.Now().UTC()); err != nil {
		return fmt.Errorf("update practice status: %w", err)
	}
	return nil
}

type practiceCollaboratorRow struct {
	PracticeID string `db:"practice_id"`
	ID         string `db:"id"`
	Nombre     string `db:"nombre"`
}

type practiceTutorRow struct {
	PracticeID string `db:"practice_id"`
	ID         string `db:"id"`
	Nombre     string `db:"nombre"`
	Role       string `db:"role"`
}

func (r *PracticeRepository) attachAssociations(ctx context.Context, details []*models.PracticeDetail) error {
	if len(details) == 0 {
		return nil
	}
	ids := make([]string, len(details))
	byID := make(map[string]*models.PracticeDetail, len(details))
	for i, detail := range details {
		ids[i] = detail.ID
		byID[detail.ID] = detail
		detail.Collaborators = []models.CollaboratorRef{}
		detail.Tutors = []models.TutorRef{}
	}

	collabQuery, collabArgs, err := sqlx.In(`SELECT pc.practice_id, co.id, co.nombre
        FROM practice_collaborators pc JOIN collaborators co ON co.id = pc.collaborator_id
        WHERE pc.practice_id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("build collaborator query: %w", err)
	}
	var collabRows []practiceCollaboratorRow
	if err := r.db.SelectContext(ctx, &collabRows, r.db.Rebind(collabQuery), collabArgs...); err != nil {
		return fmt.Errorf("load practice collaborators: %w", err)
	}
	for _, row := range collabRows {
		if detail, ok := byID[row.PracticeID]; ok {
			detail.Collaborators = append(detail.Collaborators, models.CollaboratorRef{ID: row.ID, Nombre: row.Nombre})
		}
	}

	tutorQuery, tutorArgs, err := sqlx.In(`SELECT pt.practice_id, t.id, t.nombre, pt.role
        FROM practice_tutors pt JOIN tutors t ON t.id = pt.tutor_id
        WHERE pt.practice_id IN (?)`, ids)
	if err != nil {
		return fmt.Errorf("build tutor query: %w", err)
	}
	var tutorRows []practiceTutorRow
	if err := r.db.SelectContext(ctx, &tutorRows, r.db.Rebind(tutorQuery), tutorArgs...); err != nil {
		return fmt.Errorf("load practice tutors: %w", err)
	}
	for _, row := range tutorRows {
		if detail, ok := byID[row.PracticeID]; ok {
			detail.Tutors = append(detail.Tutors, models.TutorRef{ID: row.ID, Nombre: row.Nombre, Role: row.Role})
		}
	}
	return nil
}
