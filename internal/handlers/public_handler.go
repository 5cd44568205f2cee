package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/pro-booking/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/pro-booking/internal/usecase/catalog"
	ucPortfolio "github.com/BruksfildServices01/pro-booking/internal/usecase/portfolio"
	ucProfessional "github.com/BruksfildServices01/pro-booking/internal/usecase/professional"
	ucReview "github.com/BruksfildServices01/pro-booking/internal/usecase/review"
	ucSearch "github.com/BruksfildServices01/pro-booking/internal/usecase/search"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availability *ucAppointment.GetAvailability
	search       *ucSearch.SearchProfessionals
	nearby       *ucSearch.NearbyProfessionals
	profile      *ucProfessional.GetPublicProfile
	categories   *ucCatalog.ListCategories
	resolve      *ucCatalog.ResolveService
	services     *ucCatalog.ListServices
	reviews      *ucReview.ListReviews
	albums       *ucPortfolio.ListAlbums
}

func NewPublicHandler(
	availability *ucAppointment.GetAvailability,
	search *ucSearch.SearchProfessionals,
	nearby *ucSearch.NearbyProfessionals,
	profile *ucProfessional.GetPublicProfile,
	categories *ucCatalog.ListCategories,
	resolve *ucCatalog.ResolveService,
	services *ucCatalog.ListServices,
	reviews *ucReview.ListReviews,
	albums *ucPortfolio.ListAlbums,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		search:       search,
		nearby:       nearby,
		profile:      profile,
		categories:   categories,
		resolve:      resolve,
		services:     services,
		reviews:      reviews,
		albums:       albums,
	}
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	granularity, ok := queryInt(c, "granularity")
	if !ok {
		return
	}

	av, err := h.availability.Execute(c.Request.Context(), professionalID, date, granularity)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, av)
}

////////////////////////////////////////////////////////
// SEARCH
////////////////////////////////////////////////////////

func (h *PublicHandler) Search(c *gin.Context) {
	center, ok := queryCenter(c)
	if !ok {
		return
	}
	radius, ok := queryFloat(c, "radius_km")
	if !ok {
		return
	}

	list, err := h.search.Execute(c.Request.Context(), ucSearch.Input{
		Query:    c.Query("query"),
		Category: c.Query("category"),
		Center:   center,
		RadiusKm: radius,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *PublicHandler) Nearby(c *gin.Context) {
	center, ok := queryCenter(c)
	if !ok {
		return
	}
	if center == nil {
		httperr.BadRequest(c, "missing_center", "Latitude e longitude são obrigatórias.")
		return
	}
	radius, ok := queryFloat(c, "radius_km")
	if !ok {
		return
	}

	list, err := h.nearby.Execute(c.Request.Context(), *center, radius)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

////////////////////////////////////////////////////////
// PERFIL / CATEGORIAS
////////////////////////////////////////////////////////

func (h *PublicHandler) Profile(c *gin.Context) {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return
	}
	from, ok := queryCenter(c)
	if !ok {
		return
	}

	p, err := h.profile.Execute(c.Request.Context(), professionalID, from)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PublicHandler) ListCategories(c *gin.Context) {
	list, err := h.categories.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ResolveService(c *gin.Context) {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	r, err := h.resolve.Execute(c.Request.Context(), professionalID, c.Query("name"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, r)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := h.services.Active(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

////////////////////////////////////////////////////////
// REVIEWS / PORTFÓLIO
////////////////////////////////////////////////////////

func (h *PublicHandler) ListReviews(c *gin.Context) {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := h.reviews.Execute(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *PublicHandler) ListAlbums(c *gin.Context) {
	professionalID, ok := paramID(c, "id")
	if !ok {
		return
	}

	list, err := h.albums.Execute(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}
