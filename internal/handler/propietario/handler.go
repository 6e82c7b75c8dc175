package propietario

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfcevallos/vetclinica-api/internal/handler"
	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/service/propietario"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

// Handler serves the owner endpoints. Error bodies use the "error" key
// except where noted; the exact paths and wordings are frozen by the
// deployed frontend.
type Handler struct {
	svc propietario.Service
}

func NewHandler(svc propietario.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/propietario/:id", h.Get)
	r.GET("/propietarios/:id", h.GetVerbose)
	r.GET("/ver_propietario/:id", h.GetByMascota)
	r.GET("/propietarios", h.List)
	r.GET("/propietariosHistorial", h.ListHistorial)
	r.GET("/propietarios_cita", h.ListCita)
	r.POST("/propietarios", h.Create)
	r.PUT("/editar_propietario/:id", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetVerbose is the same lookup as Get but its consumer renders the
// decorated wording.
func (h *Handler) GetVerbose(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			handler.ErrorWithMessage(c, err, handler.KeyError, "❌ Propietario no encontrado.")
			return
		}
		handler.ErrorWithMessage(c, err, handler.KeyError, "❌ Error al obtener el propietario.")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) GetByMascota(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	p, err := h.svc.GetByMascota(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) List(c *gin.Context) {
	propietarios, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.ErrorWithMessage(c, err, handler.KeyError, "❌ Error al obtener propietarios.")
		return
	}
	c.JSON(http.StatusOK, propietarios)
}

func (h *Handler) ListHistorial(c *gin.Context) {
	propietarios, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.ErrorWithMessage(c, err, handler.KeyError, "Error al obtener los propietarios")
		return
	}
	c.JSON(http.StatusOK, propietarios)
}

func (h *Handler) ListCita(c *gin.Context) {
	propietarios, err := h.svc.ListConCelular(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, propietarios)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.PropietarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyError: "Todos los campos son obligatorios"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Propietario registrado exitosamente",
		"propietarioId": id,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	var req model.PropietarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyError: "Solicitud inválida"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, &req); err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			handler.Error(c, err, handler.KeyError)
			return
		}
		handler.ErrorWithMessage(c, err, handler.KeyError, "❌ Error al actualizar el propietario.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Propietario actualizado correctamente."})
}
