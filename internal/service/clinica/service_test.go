package clinica

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

type fakeRepo struct {
	info  *model.InformacionVeterinaria
	calls int
}

func (f *fakeRepo) Get(context.Context) (*model.InformacionVeterinaria, error) {
	f.calls++
	if f.info == nil {
		return nil, sql.ErrNoRows
	}
	return f.info, nil
}

func TestGetCachesSecondRead(t *testing.T) {
	repo := &fakeRepo{info: &model.InformacionVeterinaria{ID: 1, Nombre: "Clínica Veterinaria"}}
	svc := NewService(repo, zerolog.Nop())

	first, err := svc.Get(context.Background())
	require.NoError(t, err)
	second, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestGetNotFound(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, zerolog.Nop())

	_, err := svc.Get(context.Background())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	// a miss is never cached
	_, err = svc.Get(context.Background())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.Equal(t, 2, repo.calls)
}
