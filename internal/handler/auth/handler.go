package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfcevallos/vetclinica-api/internal/handler"
	"github.com/jfcevallos/vetclinica-api/internal/middleware"
	"github.com/jfcevallos/vetclinica-api/internal/model"
	"github.com/jfcevallos/vetclinica-api/internal/service/auth"
)

type Handler struct {
	svc auth.Service
}

func NewHandler(svc auth.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the staff endpoints. verify gates only the session
// probe; the rest of the API is open, the frontend enforces login on its
// side.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, verify gin.HandlerFunc) {
	r.POST("/registrar-usuario", h.Register)
	r.POST("/registro", h.RegisterAdmin)
	r.POST("/login", h.Login)
	r.GET("/protegido", verify, h.Protegido)
	r.GET("/veterinarios", h.ListVeterinarios)
	r.GET("/veterinarios_cita", h.ListVeterinariosCita)
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyMessage: "Todos los campos son obligatorios."})
		return
	}

	id, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err, handler.KeyMessage)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Usuario registrado correctamente",
		"usuarioId": id,
	})
}

func (h *Handler) RegisterAdmin(c *gin.Context) {
	var req model.RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyMessage: "Todos los campos son obligatorios."})
		return
	}

	id, err := h.svc.RegisterAdmin(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err, handler.KeyMessage)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Usuario registrado correctamente",
		"usuarioId": id,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{handler.KeyMessage: "Solicitud inválida"})
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err, handler.KeyMessage)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Protegido echoes the verified identity; the frontend uses it to validate
// a stored session on startup.
func (h *Handler) Protegido(c *gin.Context) {
	claims, _ := middleware.UsuarioFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Accediste a una ruta protegida",
		"usuario": claims,
	})
}

func (h *Handler) ListVeterinarios(c *gin.Context) {
	vets, err := h.svc.ListVeterinarios(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, vets)
}

func (h *Handler) ListVeterinariosCita(c *gin.Context) {
	vets, err := h.svc.ListVeterinariosCita(c.Request.Context())
	if err != nil {
		handler.Error(c, err, handler.KeyError)
		return
	}
	c.JSON(http.StatusOK, vets)
}
