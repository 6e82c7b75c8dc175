package historia

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfcevallos/vetclinica-api/internal/handler"
	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/service/historia"
)

type Handler struct {
	svc historia.Service
}

func NewHandler(svc historia.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/historias_clinicas", h.List)
	r.POST("/historias_clinicas", h.Create)
	r.GET("/historia-clinica/:id", h.GetPrimeraPorMascota)
	r.GET("/historia_clinica/:mascotaId", h.ListPorMascota)
	r.GET("/historia_clinica_detalle/:id", h.GetDetalle)
	r.PUT("/historia_clinica/:id", h.Update)
	r.DELETE("/historia_clinica/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	historias, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, historias)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.HistoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyError: "Faltan campos obligatorios."})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":             "Historia clínica registrada exitosamente.",
		"historia_clinica_id": id,
	})
}

// GetPrimeraPorMascota returns the first history of a pet; the legacy
// detail page only ever showed one.
func (h *Handler) GetPrimeraPorMascota(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	historia, err := h.svc.GetPrimeraPorMascota(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, historia)
}

func (h *Handler) ListPorMascota(c *gin.Context) {
	mascotaID, ok := handler.ParseID(c, "mascotaId", handler.KeyError)
	if !ok {
		return
	}

	historias, err := h.svc.ListPorMascota(c.Request.Context(), mascotaID)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, historias)
}

func (h *Handler) GetDetalle(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	historia, err := h.svc.GetDetalle(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, historia)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	var req model.HistoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyError: "Solicitud inválida"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, &req); err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Historia clínica actualizada correctamente."})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Historia clínica eliminada correctamente."})
}
