package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"starblog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/characters", h.ListCharacters)
	rg.GET("/character/:id", h.GetCharacter)
	rg.GET("/planets", h.ListPlanets)
	rg.GET("/planet/:id", h.GetPlanet)
}

// ListCharacters handles GET /characters
func (h *Handler) ListCharacters(c *gin.Context) {
	characters, err := h.service.Characters(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if len(characters) == 0 {
		response.Error(c, http.StatusNotFound, "not found")
		return
	}

	c.JSON(http.StatusOK, characters)
}

// GetCharacter handles GET /character/:id
func (h *Handler) GetCharacter(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid character id")
		return
	}

	character, err := h.service.CharacterByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCharacterNotFound) {
			response.Error(c, http.StatusNotFound, "character not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, character)
}

// ListPlanets handles GET /planets
func (h *Handler) ListPlanets(c *gin.Context) {
	planets, err := h.service.Planets(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if len(planets) == 0 {
		response.Error(c, http.StatusNotFound, "not found")
		return
	}

	c.JSON(http.StatusOK, planets)
}

// GetPlanet handles GET /planet/:id
func (h *Handler) GetPlanet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid planet id")
		return
	}

	planet, err := h.service.PlanetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPlanetNotFound) {
			response.Error(c, http.StatusNotFound, "planet not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, planet)
}
