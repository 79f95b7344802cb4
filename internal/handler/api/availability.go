package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary List availability ranges
// @Tags availability
// @Produce json
// @Success 200 {array} resdto.AvailabilityResponse
// @Router /availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityList(views))
}

// @Summary Get availability range
// @Tags availability
// @Produce json
// @Param id path string true "Range ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /availability/{id} [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Time slots for a date
// @Description Slots offered on the date, flagged booked when a pending or approved booking holds them
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DateSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	var query reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.q.SlotsForDate(c.Request.Context(), query.Date)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load time slots")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDateSlotsView(view))
}

// @Summary Create availability range
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAvailabilityRequest true "Range"
// @Success 201 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/availability [post]
func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req reqdto.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Create availability failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAvailabilityView(view))
}

// @Summary Update availability range
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Range ID"
// @Param request body reqdto.UpdateAvailabilityRequest true "Fields to change"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/availability/{id} [patch]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	var req reqdto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Update availability failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Delete availability range
// @Tags admin
// @Param id path string true "Range ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/availability/{id} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	if err := h.cmds.Remove(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUseCaseError(c, err, "Delete availability failed")
		return
	}
	c.Status(http.StatusNoContent)
}
