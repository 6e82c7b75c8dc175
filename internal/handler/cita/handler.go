package cita

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfcevallos/vetclinica-api/internal/handler"
	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/service/cita"
)

type Handler struct {
	svc cita.Service
}

func NewHandler(svc cita.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/citas", h.List)
	r.POST("/citas", h.Create)
	r.DELETE("/citas/:id", h.Delete)
	r.GET("/ver_citas", h.ListVista)
	r.GET("/ver_cita/:id", h.GetDetalle)
	r.PUT("/editar_cita/:id", h.Update)
}

func (h *Handler) List(c *gin.Context) {
	citas, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, citas)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyError: "Todos los campos son obligatorios."})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cita registrada exitosamente",
		"citaId":  id,
	})
}

// Delete always reports success; the original never checked whether the
// row existed.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cita eliminada correctamente"})
}

func (h *Handler) ListVista(c *gin.Context) {
	citas, err := h.svc.ListVista(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, citas)
}

func (h *Handler) GetDetalle(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	det, err := h.svc.GetDetalle(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, det)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	var req model.CitaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyError: "Solicitud inválida"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, &req); err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Cita actualizada correctamente."})
}
