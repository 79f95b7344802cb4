package api

import (
	"net/http"

	"salon-booking/internal/domain/booking"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a pending booking in one request
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Create booking failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Submit booking draft
// @Description Turn the current draft into a pending booking and clear the draft
// @Tags booking-draft
// @Produce json
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/draft/submit [post]
func (h *BookingHandler) SubmitDraft(c *gin.Context) {
	view, err := h.cmds.SubmitDraft(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Submit booking failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Tags admin
// @Produce json
// @Param status query string false "all, pending, approved or rejected"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	status, err := query.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), status)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(views))
}

// @Summary Booking counts by status
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.BookingSummaryResponse
// @Router /admin/bookings/summary [get]
func (h *BookingHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load summary")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSummary(summary))
}

// @Summary Get booking
// @Tags admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	h.setStatus(c, req.Status)
}

// @Summary Approve booking
// @Tags admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	h.setStatus(c, booking.StatusApproved.String())
}

// @Summary Reject booking
// @Tags admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	h.setStatus(c, booking.StatusRejected.String())
}

func (h *BookingHandler) setStatus(c *gin.Context, status string) {
	view, err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		abortWithUseCaseError(c, err, "Update booking status failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
