package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-on-wheel/internal/audit"
	"github.com/BruksfildServices01/service-on-wheel/internal/dto"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/service-on-wheel/internal/infra/repository"
	"github.com/BruksfildServices01/service-on-wheel/internal/middleware"
	ucBooking "github.com/BruksfildServices01/service-on-wheel/internal/usecase/booking"
)

type BookingHandler struct {
	audit *audit.Dispatcher
}

func NewBookingHandler(audit *audit.Dispatcher) *BookingHandler {
	return &BookingHandler{audit: audit}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, ucBooking.MsgMissingFields)
		return
	}

	repo := infraRepo.NewBookingGormRepository(middleware.Scope(c))
	uc := ucBooking.NewCreateBooking(repo, h.audit)

	b, err := uc.Execute(c.Request.Context(), req.Draft())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewCreateBookingResponse(b))
}
