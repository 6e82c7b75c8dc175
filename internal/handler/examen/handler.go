package examen

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfcevallos/vetclinica-api/internal/handler"
	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/service/examen"
)

type Handler struct {
	svc examen.Service
}

func NewHandler(svc examen.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/examenes_clinicos", h.List)
	r.POST("/examenes_clinicos", h.Create)
	r.GET("/examen-clinico/:id", h.GetPrimeroPorMascota)
	r.GET("/examen_clinico/:mascotaId", h.ListPorMascota)
	r.GET("/examen_clinico_detalle/:id", h.GetDetalle)
	r.PUT("/examen_clinico/:id", h.Update)
	r.DELETE("/examen_clinico/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	examenes, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, examenes)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.ExamenRequest
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
		"message":           "Examen clínico registrado con éxito.",
		"examen_clinico_id": id,
	})
}

func (h *Handler) GetPrimeroPorMascota(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	examen, err := h.svc.GetPrimeroPorMascota(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, examen)
}

func (h *Handler) ListPorMascota(c *gin.Context) {
	mascotaID, ok := handler.ParseID(c, "mascotaId", handler.KeyError)
	if !ok {
		return
	}

	examenes, err := h.svc.ListPorMascota(c.Request.Context(), mascotaID)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, examenes)
}

func (h *Handler) GetDetalle(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	examen, err := h.svc.GetDetalle(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, examen)
}

// Update reports success regardless of whether the id matched a row.
func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "id", handler.KeyError)
	if !ok {
		return
	}

	var req model.ExamenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyError: "Solicitud inválida"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, &req); err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Examen clínico actualizado correctamente."})
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

	c.JSON(http.StatusOK, gin.H{"message": "Examen clínico eliminada correctamente."})
}
