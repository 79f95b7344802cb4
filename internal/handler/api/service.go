package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	q queries.ServiceQueries
}

func NewServiceHandler(q queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{q: q}
}

// @Summary List services
// @Description List the salon's services, optionally for one gender
// @Tags services
// @Produce json
// @Param gender query string false "men or women"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	var query reqdto.ListServicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	gender, err := query.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid gender", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), gender)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceList(views))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load service")
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}
