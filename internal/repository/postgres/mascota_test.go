package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcevallos/vetclinica-api/internal/model"
)

func TestMascotaListKeepsUnassigned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMascotaRepository(db)

	nacimiento := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`LEFT JOIN propietarios`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "nombre", "especie", "raza", "sexo", "color",
			"fecha_nacimiento", "edad", "procedencia", "chip", "propietario_nombre",
		}).
			AddRow(int64(1), "Firulais", "Perro", "Mestizo", "Macho", "Café", nacimiento, 4, "Adoptado", nil, "Juan").
			AddRow(int64(2), "Michi", "Gato", "Siamés", "Hembra", nil, nacimiento, 2, "Rescatado", nil, nil))

	mascotas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, mascotas, 2)
	assert.Nil(t, mascotas[1].PropietarioNombre)
}

func TestMascotaExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMascotaRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMascotaDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMascotaRepository(db)

	mock.ExpectExec(`DELETE FROM mascotas WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

// The edit endpoint never touches nombre or chip.
func TestMascotaUpdateColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMascotaRepository(db)

	propietarioID := int64(7)
	mock.ExpectExec(`UPDATE mascotas SET\s+especie = \$1, raza = \$2, sexo = \$3, color = \$4,\s+fecha_nacimiento = \$5, edad = \$6, propietario_id = \$7\s+WHERE id = \$8`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(context.Background(), 1, &model.MascotaUpdateRequest{
		Especie:         "Perro",
		Raza:            "Labrador",
		Sexo:            "Macho",
		FechaNacimiento: model.NewFecha(time.Date(2021, 5, 5, 0, 0, 0, 0, time.UTC)),
		Edad:            3,
		PropietarioID:   &propietarioID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}
