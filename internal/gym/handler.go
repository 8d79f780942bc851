package gym

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithjaspreet/og-backend/internal/api"
	"github.com/codewithjaspreet/og-backend/internal/apperr"
	"github.com/codewithjaspreet/og-backend/internal/schema"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// AddGym godoc
// @Summary      Add a gym
// @Description  Validates and stores a new gym document.
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Param        request body schema.Gym true "Gym payload"
// @Success      201 {object} map[string]any
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /add-gym [post]
func (h *Handler) AddGym(c *gin.Context) {
	raw, err := api.BindDocument(c)
	if err != nil {
		api.RenderError(c, apperr.Wrap(apperr.KindBadRequest, "invalid request body", err))
		return
	}

	g, verr := schema.ParseGym(raw)
	if verr != nil {
		api.RenderError(c, verr)
		return
	}

	id, err := h.service.CreateGym(c.Request.Context(), g)
	if err != nil {
		api.RenderError(c, apperr.From(err, "add gym"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "Gym added successfully",
		"gym_id":  id,
	})
}

// AddGymPlans godoc
// @Summary      Add a gym plan
// @Description  Validates and stores a new gym plan document.
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Param        request body schema.GymPlan true "Gym plan payload"
// @Success      201 {object} map[string]any
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /add-gym-plans [post]
func (h *Handler) AddGymPlans(c *gin.Context) {
	raw, err := api.BindDocument(c)
	if err != nil {
		api.RenderError(c, apperr.Wrap(apperr.KindBadRequest, "invalid request body", err))
		return
	}

	p, verr := schema.ParseGymPlan(raw)
	if verr != nil {
		api.RenderError(c, verr)
		return
	}

	id, err := h.service.CreateGymPlan(c.Request.Context(), p)
	if err != nil {
		api.RenderError(c, apperr.From(err, "add gym plans"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":       true,
		"message":      "Gym plans added successfully",
		"gym_plans_id": id,
	})
}
