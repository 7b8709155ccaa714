package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/uta-diee/practicas-api/internal/models"
)

// LetterRepository manages persistence for authorization letters.
type LetterRepository struct {
	db *sqlx.DB
}

// NewLetterRepository constructs a LetterRepository.
func NewLetterRepository(db *sqlx.DB) *LetterRepository {
	return &LetterRepository{db: db}
}

const letterColumns = `id, code, ref_title, city, letter_date, addressee_name, addressee_role, institution, institution_addr,
        practice_type, period_start, period_end, degree, comments, tutor_name, tutor_phone, students_json, status, file_path, created_at`

// Create inserts a letter, assigning the next correlative folio inside
// the transaction so concurrent creates cannot share a code.
func (r *LetterRepository) Create(ctx context.Context, letter *models.AuthorizationRequest) error {
	if letter.ID == "" {
		letter.ID = uuid.NewString()
	}
	letter.CreatedAt = time.Now().UTC()
	if letter.Status == "" {
		letter.Status = models.LetterStatusDraft
	}
	studentsJSON, err := json.Marshal(letter.Students)
	if err != nil {
		return fmt.Errorf("marshal letter students: %w", err)
	}
	letter.StudentsJSON = studentsJSON

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin letter tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(id) FROM authorization_requests`); err != nil {
		return fmt.Errorf("count letters: %w", err)
	}
	letter.Code = fmt.Sprintf("CARTA-%d", count+1)

	const insert = `INSERT INTO authorization_requests (id, code, ref_title, city, letter_date, addressee_name, addressee_role,
        institution, institution_addr, practice_type, period_start, period_end, degree, comments, tutor_name, tutor_phone,
        students_json, status, file_path, created_at)
        VALUES (:id, :code, :ref_title, :city, :letter_date, :addressee_name, :addressee_role,
        :institution, :institution_addr, :practice_type, :period_start, :period_end, :degree, :comments, :tutor_name, :tutor_phone,
        :students_json, :status, :file_path, :created_at)`
	if _, err := tx.NamedExecContext(ctx, insert, letter); err != nil {
		return fmt.Errorf("insert letter: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit letter tx: %w", err)
	}
	return nil
}

// FindByID fetches one letter with its students decoded.
func (r *LetterRepository) FindByID(ctx context.Context, id string) (*models.AuthorizationRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM authorization_requests WHERE id = $1`, letterColumns)
	var letter models.AuthorizationRequest
	if err := r.db.GetContext(ctx, &letter, query, id); err != nil {
		return nil, err
	}
	if err := decodeLetterStudents(&letter); err != nil {
		return nil, err
	}
	return &letter, nil
}

// List returns letters newest first, optionally filtered.
func (r *LetterRepository) List(ctx context.Context, filter models.LetterFilter) ([]models.AuthorizationRequest, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.Institution != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(institution) LIKE $%d", len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Institution)+"%")
	}
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(LOWER(code) LIKE $%d OR LOWER(ref_title) LIKE $%d OR LOWER(addressee_name) LIKE $%d)", idx, idx, idx))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	query := fmt.Sprintf(`SELECT %s FROM authorization_requests WHERE %s ORDER BY created_at DESC`,
		letterColumns, strings.Join(conditions, " AND "))
	var letters []models.AuthorizationRequest
	if err := r.db.SelectContext(ctx, &letters, query, args...); err != nil {
		return nil, fmt.Errorf("list letters: %w", err)
	}
	for i := range letters {
		if err := decodeLetterStudents(&letters[i]); err != nil {
			return nil, err
		}
	}
	return letters, nil
}

// UpdateStatus changes the lifecycle state of a letter.
func (r *LetterRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE authorization_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update letter status: %w", err)
	}
	return requireAffected(result, "letter")
}

// SetFilePath stores the rendered PDF location.
func (r *LetterRepository) SetFilePath(ctx context.Context, id, path string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE authorization_requests SET file_path = $2 WHERE id = $1`, id, path)
	if err != nil {
		return fmt.Errorf("set letter file path: %w", err)
	}
	return requireAffected(result, "letter")
}

// Delete removes a letter.
func (r *LetterRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM authorization_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete letter: %w", err)
	}
	return requireAffected(result, "letter")
}

func decodeLetterStudents(letter *models.AuthorizationRequest) error {
	letter.Students = []models.LetterStudent{}
	if len(letter.StudentsJSON) == 0 {
		return nil
	}
	if err := json.Unmarshal(letter.StudentsJSON, &letter.Students); err != nil {
		return fmt.Errorf("decode letter students: %w", err)
	}
	return nil
}
