package user

import (
	"errors"
	"net/http"

	"starblog/internal/pkg/response"
	"starblog/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.ListUsers)
	rg.POST("/user", h.CreateUser)
}

// ListUsers handles GET /user. An empty table answers 404, matching the
// collection endpoints' shared empty-is-not-found policy.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if len(users) == 0 {
		response.Error(c, http.StatusNotFound, "not found")
		return
	}

	c.JSON(http.StatusOK, ToUserListResponse(users))
}

// CreateUser handles POST /user
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "validation failed", details)
		return
	}

	u, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "email already taken")
		case errors.Is(err, ErrNameTaken):
			response.Error(c, http.StatusConflict, "name already taken")
		default:
			response.Error(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, ToUserResponse(u))
}
