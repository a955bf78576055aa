package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-on-wheel/internal/domain/catalog"
	"github.com/BruksfildServices01/service-on-wheel/internal/httperr"
	"github.com/BruksfildServices01/service-on-wheel/internal/httpresp"
	"github.com/BruksfildServices01/service-on-wheel/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/service-on-wheel/internal/infra/repository"
	"github.com/BruksfildServices01/service-on-wheel/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/service-on-wheel/internal/usecase/catalog"
)

type CatalogHandler struct {
	cache *cache.Catalog
}

// NewCatalogHandler accepts a nil cache; reads then always hit the store.
func NewCatalogHandler(cache *cache.Catalog) *CatalogHandler {
	return &CatalogHandler{cache: cache}
}

func (h *CatalogHandler) repo(c *gin.Context) catalog.Repository {
	return h.cache.Wrap(infraRepo.NewCatalogGormRepository(middleware.Scope(c)))
}

func (h *CatalogHandler) List(c *gin.Context) {
	services, err := ucCatalog.NewListServices(h.repo(c)).Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *CatalogHandler) Get(c *gin.Context) {
	// Non-numeric ids behave like an unmatched route.
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, ucCatalog.MsgServiceNotFound)
		return
	}

	svc, err := ucCatalog.NewGetService(h.repo(c)).Execute(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) Search(c *gin.Context) {
	services, err := ucCatalog.NewSearchServices(h.repo(c)).Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}
