package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"starblog/internal/domain"
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
	rg.GET("/user/favorite/:id", h.ListFavorites)

	rg.POST("/favorite/character/:character_id", h.AddCharacter)
	rg.DELETE("/favorite/character/:character_id", h.RemoveCharacter)
	rg.POST("/favorite/planet/:planet_id", h.AddPlanet)
	rg.DELETE("/favorite/planet/:planet_id", h.RemovePlanet)
}

// ListFavorites handles GET /user/favorite/:id
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "user not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	// an existing user with zero favorites still answers 404, with its own
	// message so the two cases stay distinguishable
	if len(favorites) == 0 {
		response.Error(c, http.StatusNotFound, "no favorites found for the user")
		return
	}

	response.Success(c, http.StatusOK, ToFavoriteListResponse(favorites))
}

// AddCharacter handles POST /favorite/character/:character_id
func (h *Handler) AddCharacter(c *gin.Context) {
	h.add(c, domain.TargetCharacter, "character_id")
}

// AddPlanet handles POST /favorite/planet/:planet_id
func (h *Handler) AddPlanet(c *gin.Context) {
	h.add(c, domain.TargetPlanet, "planet_id")
}

// RemoveCharacter handles DELETE /favorite/character/:character_id
func (h *Handler) RemoveCharacter(c *gin.Context) {
	h.remove(c, domain.TargetCharacter, "character_id")
}

// RemovePlanet handles DELETE /favorite/planet/:planet_id
func (h *Handler) RemovePlanet(c *gin.Context) {
	h.remove(c, domain.TargetPlanet, "planet_id")
}

func (h *Handler) add(c *gin.Context, kind domain.TargetKind, param string) {
	targetID, req, ok := h.bindRequest(c, param)
	if !ok {
		return
	}

	f, err := h.service.Add(c.Request.Context(), req.UserID, kind, targetID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ToFavoriteResponse(f))
}

func (h *Handler) remove(c *gin.Context, kind domain.TargetKind, param string) {
	targetID, req, ok := h.bindRequest(c, param)
	if !ok {
		return
	}

	deleted, err := h.service.Remove(c.Request.Context(), req.UserID, kind, targetID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}

func (h *Handler) bindRequest(c *gin.Context, param string) (int64, *FavoriteRequest, bool) {
	targetID, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid "+param)
		return 0, nil, false
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return 0, nil, false
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "validation failed", details)
		return 0, nil, false
	}

	return targetID, &req, true
}

func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "user not found")
	case errors.Is(err, ErrCharacterNotFound):
		response.Error(c, http.StatusNotFound, "character not found")
	case errors.Is(err, ErrPlanetNotFound):
		response.Error(c, http.StatusNotFound, "planet not found")
	case errors.Is(err, ErrFavoriteNotFound):
		response.Error(c, http.StatusNotFound, "favorite not found")
	case errors.Is(err, domain.ErrInvalidTargetKind):
		response.Error(c, http.StatusBadRequest, "invalid favorite target")
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
