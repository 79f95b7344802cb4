package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// multipart framing allowance on top of the slip itself
const multipartOverheadBytes = 64 << 10

type DraftHandler struct {
	cmds         commands.DraftCommands
	q            queries.DraftQueries
	maxSlipBytes int64
}

func NewDraftHandler(cmds commands.DraftCommands, q queries.DraftQueries, maxSlipBytes int64) *DraftHandler {
	return &DraftHandler{cmds: cmds, q: q, maxSlipBytes: maxSlipBytes}
}

// @Summary Current booking draft
// @Tags booking-draft
// @Produce json
// @Success 200 {object} resdto.DraftResponse
// @Router /booking/draft [get]
func (h *DraftHandler) Get(c *gin.Context) {
	view, err := h.q.Current(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load draft")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Update booking draft
// @Description Merge one wizard step into the draft. Omitted fields are kept; empty strings clear.
// @Tags booking-draft
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateDraftRequest true "Draft fields"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/draft [patch]
func (h *DraftHandler) Update(c *gin.Context) {
	var req reqdto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Update draft failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Discard booking draft
// @Tags booking-draft
// @Success 204 "No Content"
// @Router /booking/draft [delete]
func (h *DraftHandler) Reset(c *gin.Context) {
	if err := h.cmds.Reset(c.Request.Context()); err != nil {
		abortWithUseCaseError(c, err, "Reset draft failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload payment slip
// @Tags booking-draft
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "JPEG or PNG image"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 415 {object} httperr.Response
// @Router /booking/draft/payment-slip [put]
func (h *DraftHandler) UploadPaymentSlip(c *gin.Context) {
	if h.maxSlipBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSlipBytes+multipartOverheadBytes)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payment slip is too large", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"file": "file is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable upload", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable upload", nil)
		return
	}

	view, err := h.cmds.AttachPaymentSlip(c.Request.Context(), data)
	if err != nil {
		abortWithUseCaseError(c, err, "Upload payment slip failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}

// @Summary Remove payment slip
// @Tags booking-draft
// @Produce json
// @Success 200 {object} resdto.DraftResponse
// @Router /booking/draft/payment-slip [delete]
func (h *DraftHandler) RemovePaymentSlip(c *gin.Context) {
	view, err := h.cmds.ClearPaymentSlip(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Remove payment slip failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftView(view))
}
