package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/service-on-wheel/internal/infra/repository"
	"github.com/BruksfildServices01/service-on-wheel/internal/middleware"
	ucTestimonial "github.com/BruksfildServices01/service-on-wheel/internal/usecase/testimonial"
)

type TestimonialHandler struct{}

func NewTestimonialHandler() *TestimonialHandler {
	return &TestimonialHandler{}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	repo := infraRepo.NewTestimonialGormRepository(middleware.Scope(c))

	items, err := ucTestimonial.NewListTestimonials(repo).Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}
