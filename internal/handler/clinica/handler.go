package clinica

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfcevallos/vetclinica-api/internal/handler"
	"github.com/jfcevallos/vetclinica-api/internal/service/clinica"
)

type Handler struct {
	svc clinica.Service
}

func NewHandler(svc clinica.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/clinica", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	info, err := h.svc.Get(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, info)
}
