package repository

import (
	"context"
	"errors"

	"github.com/jfcevallos/vetclinica-api/internal/model"
)

// ErrDuplicate signals a uniqueness violation (usuarios.correo). Services
// translate it into a Conflict.
var ErrDuplicate = errors.New("duplicate record")

// Not-found is signaled with database/sql.ErrNoRows; zero affected rows on
// update/delete are returned as a count, never as an error.

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) (int64, error)
	Get(ctx context.Context, id int64) (*model.Usuario, error)
	GetByCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	ExistsByCorreo(ctx context.Context, correo string) (bool, error)
	ListVeterinarios(ctx context.Context) ([]model.UsuarioResumen, error)
	ListVeterinariosCita(ctx context.Context) ([]model.UsuarioResumen, error)
}

type PropietarioRepository interface {
	Create(ctx context.Context, req *model.PropietarioRequest) (int64, error)
	Get(ctx context.Context, id int64) (*model.Propietario, error)
	GetByMascota(ctx context.Context, mascotaID int64) (*model.Propietario, error)
	List(ctx context.Context) ([]model.PropietarioResumen, error)
	ListConCelular(ctx context.Context) ([]model.PropietarioResumen, error)
	Update(ctx context.Context, id int64, req *model.PropietarioRequest) (int64, error)
}

type MascotaRepository interface {
	Create(ctx context.Context, req *model.MascotaRequest) (int64, error)
	Get(ctx context.Context, id int64) (*model.MascotaDetalle, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]model.MascotaConPropietario, error)
	ListResumen(ctx context.Context) ([]model.MascotaResumen, error)
	ListResumenConPropietario(ctx context.Context) ([]model.MascotaResumen, error)
	Update(ctx context.Context, id int64, req *model.MascotaUpdateRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type HistoriaRepository interface {
	Create(ctx context.Context, req *model.HistoriaRequest) (int64, error)
	List(ctx context.Context) ([]model.HistoriaClinica, error)
	GetPrimeraPorMascota(ctx context.Context, mascotaID int64) (*model.HistoriaClinica, error)
	ListPorMascota(ctx context.Context, mascotaID int64) ([]model.HistoriaConVeterinario, error)
	GetDetalle(ctx context.Context, id int64) (*model.HistoriaConVeterinario, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, req *model.HistoriaRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ExamenRepository interface {
	Create(ctx context.Context, req *model.ExamenRequest) (int64, error)
	List(ctx context.Context) ([]model.ExamenClinico, error)
	GetPrimeroPorMascota(ctx context.Context, mascotaID int64) (*model.ExamenClinico, error)
	ListPorMascota(ctx context.Context, mascotaID int64) ([]model.ExamenConMascota, error)
	GetDetalle(ctx context.Context, id int64) (*model.ExamenClinico, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, req *model.ExamenRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type CitaRepository interface {
	Create(ctx context.Context, req *model.CitaRequest) (int64, error)
	List(ctx context.Context) ([]model.Cita, error)
	ListVista(ctx context.Context) ([]model.CitaVista, error)
	GetDetalle(ctx context.Context, id int64) (*model.CitaDetalle, error)
	Update(ctx context.Context, id int64, req *model.CitaUpdateRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type ClinicaRepository interface {
	Get(ctx context.Context) (*model.InformacionVeterinaria, error)
}
