package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codewithjaspreet/og-backend/internal/api"
	"github.com/codewithjaspreet/og-backend/internal/apperr"
	"github.com/codewithjaspreet/og-backend/internal/metrics"
	"github.com/codewithjaspreet/og-backend/internal/schema"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// AddUser godoc
// @Summary      Provision a user
// @Description  Creates the login principal, assigns the gym role, and stores the profile.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body schema.User true "User payload"
// @Success      201 {object} map[string]any
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /add-user [post]
func (h *Handler) AddUser(c *gin.Context) {
	raw, err := api.BindDocument(c)
	if err != nil {
		api.RenderError(c, apperr.Wrap(apperr.KindBadRequest, "invalid request body", err))
		return
	}

	u, verr := schema.ParseUser(raw)
	if verr != nil {
		api.RenderError(c, verr)
		return
	}

	result, err := h.service.Provision(c.Request.Context(), u)
	if err != nil {
		api.RenderError(c, apperr.From(err, "add user"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":             true,
		"message":            "User created successfully",
		"user_id":            result.UserID,
		"generated_password": result.GeneratedPassword,
	})
}

// GetMemberListing godoc
// @Summary      Fetch one member or a page of a gym's members
// @Description  Single-record mode when user_id is given, collection mode when gym_name is given.
// @Tags         users
// @Produce      json
// @Param        user_id     query string false "Member id"
// @Param        gym_name    query string false "Gym to list members of"
// @Param        last_doc_id query string false "Pagination cursor"
// @Param        payments    query string false "Sort the page by fees due date"
// @Param        birthday    query string false "Sort the page by date of birth"
// @Success      200 {object} map[string]any
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /members [get]
func (h *Handler) GetMemberListing(c *gin.Context) {
	if uid := c.Query("user_id"); uid != "" {
		metrics.RecordMemberListing("single")
		member, err := h.service.GetMember(c.Request.Context(), uid)
		if err != nil {
			api.RenderError(c, apperr.From(err, "get user details"))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  true,
			"message": "User details fetched successfully",
			"user":    member,
		})
		return
	}

	gymName := c.Query("gym_name")
	if gymName == "" {
		api.RenderError(c, apperr.New(apperr.KindBadRequest, "Invalid request parameters"))
		return
	}

	metrics.RecordMemberListing("collection")
	page, err := h.service.ListMembers(c.Request.Context(), ListQuery{
		GymName:   gymName,
		LastDocID: c.Query("last_doc_id"),
		// Flags follow presence semantics: any non-empty value enables them.
		SortByBirthday: c.Query("birthday") != "",
		SortByPayments: c.Query("payments") != "",
	})
	if err != nil {
		api.RenderError(c, apperr.From(err, "get user details"))
		return
	}

	if len(page.Members) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":      true,
			"message":     "No more members",
			"members":     []*MemberSummary{},
			"last_doc_id": nil,
			"has_more":    false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      true,
		"message":     "User details fetched successfully",
		"members":     page.Members,
		"last_doc_id": page.LastDocID,
		"has_more":    page.HasMore,
	})
}

// GetUserDetailing godoc
// @Summary      Fetch a member's full profile
// @Tags         users
// @Produce      json
// @Param        user_id query string true "Member id"
// @Success      200 {object} map[string]any
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/detail [get]
func (h *Handler) GetUserDetailing(c *gin.Context) {
	uid := c.Query("user_id")
	if uid == "" {
		api.RenderError(c, apperr.New(apperr.KindBadRequest, "user_id is required"))
		return
	}

	detail, err := h.service.GetMemberDetail(c.Request.Context(), uid)
	if err != nil {
		api.RenderError(c, apperr.From(err, "get user detailing"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "User details fetched successfully",
		"user":    detail,
	})
}
