package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-on-wheel/internal/domain/credential"
	"github.com/BruksfildServices01/service-on-wheel/internal/dto"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/service-on-wheel/internal/infra/repository"
	"github.com/BruksfildServices01/service-on-wheel/internal/middleware"
	ucBooking "github.com/BruksfildServices01/service-on-wheel/internal/usecase/booking"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		httperr.Unauthorized(c, middleware.MsgInvalidToken)
		return
	}

	repo := infraRepo.NewUserGormRepository(middleware.Scope(c))

	user, err := repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		// The token outlived its account.
		if errors.Is(err, credential.ErrUserNotFound) {
			httperr.Unauthorized(c, middleware.MsgInvalidToken)
			return
		}
		httperr.Respond(c, httperr.ErrInternal(httperr.MsgDatabaseFailure, err))
		return
	}

	httpresp.OK(c, dto.UserDTO{ID: user.ID, Email: user.Email})
}

func (h *MeHandler) ListBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		httperr.Unauthorized(c, middleware.MsgInvalidToken)
		return
	}

	repo := infraRepo.NewBookingGormRepository(middleware.Scope(c))

	bookings, err := ucBooking.NewListBookingsForUser(repo).Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.NewBookingList(bookings))
}
