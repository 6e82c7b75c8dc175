package mascota

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfcevallos/vetclinica-api/internal/handler"
	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/service/mascota"
	"github.com/jfcevallos/vetclinica-api/pkg/apperror"
)

type Handler struct {
	svc mascota.Service
}

func NewHandler(svc mascota.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the pet endpoints onto the /api group. Delete is
// the one route mounted outside /api, on the historic /eliminar prefix.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/mascotas", h.List)
	r.POST("/mascotas", h.Create)
	r.GET("/mascotas/:id", h.Get)
	r.GET("/lista-mascotas", h.ListResumen)
	r.GET("/mascotasHistorial", h.ListHistorial)
	r.GET("/mascotas_citas", h.ListCitas)
	r.PUT("/editar-mascotas/:id", h.Update)
}

func (h *Handler) RegisterDeleteRoute(r *gin.RouterGroup) {
	r.DELETE("/mascotas/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	mascotas, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, mascotas)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.MascotaRequest
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
		"message":   "Mascota registrada exitosamente",
		"mascotaId": id,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	det, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, det)
}

func (h *Handler) ListResumen(c *gin.Context) {
	mascotas, err := h.svc.ListResumen(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, mascotas)
}

func (h *Handler) ListHistorial(c *gin.Context) {
	mascotas, err := h.svc.ListResumen(c.Request.Context())
	if err != nil {
		handler.ErrorWithMessage(c, err, handler.KeyError, "Error al obtener las mascotas")
		return
	}
	c.JSON(http.StatusOK, mascotas)
}

func (h *Handler) ListCitas(c *gin.Context) {
	mascotas, err := h.svc.ListResumenConPropietario(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, mascotas)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	var req model.MascotaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyError: "Solicitud inválida"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, &req); err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mascota actualizada correctamente"})
}

// Delete answers on the "message" key for every outcome, unlike the rest
// of the pet endpoints.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyMessage)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			handler.Error(c, err, handler.KeyMessage)
			return
		}
		handler.ErrorWithMessage(c, err, handler.KeyMessage, "❌ Error interno del servidor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Mascota eliminada correctamente"})
}
