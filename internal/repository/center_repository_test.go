package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uta-diee/practicas-api/internal/models"
)

func TestCenterRepositoryListFiltersAndPaginates(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCenterRepository(db)

	tipo := models.CenterTypeLiceo
	rows := sqlmock.NewRows([]string{"id", "nombre", "tipo", "region", "comuna", "direccion", "telefono", "correo", "convenio", "url_rrss", "association_start", "created_at", "updated_at"}).
		AddRow("c1", "Liceo A-1", tipo, nil, "Arica", nil, nil, nil, nil, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery("SELECT .* FROM centers WHERE 1=1 AND tipo = \\$1 AND \\(LOWER\\(nombre\\) LIKE \\$2 OR .* LIKE \\$2\\) ORDER BY nombre ASC LIMIT 10 OFFSET 0").
		WithArgs(models.CenterTypeLiceo, "%liceo%").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT\\(id\\) FROM centers WHERE").
		WithArgs(models.CenterTypeLiceo, "%liceo%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	centers, total, err := repo.List(context.Background(), models.CenterFilter{Tipo: models.CenterTypeLiceo, Search: "Liceo"})
	require.NoError(t, err)
	assert.Len(t, centers, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCenterRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCenterRepository(db)

	mock.ExpectExec("INSERT INTO centers").
		WillReturnResult(sqlmock.NewResult(1, 1))

	center := &models.Center{Nombre: "Escuela D-4"}
	require.NoError(t, repo.Create(context.Background(), center))
	assert.NotEmpty(t, center.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCenterRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCenterRepository(db)

	mock.ExpectExec("DELETE FROM centers WHERE id").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
