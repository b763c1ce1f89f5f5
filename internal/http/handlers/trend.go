package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	trendrepo "github.com/trendforge/trendforge-backend/internal/data/repos/trend"
	"github.com/trendforge/trendforge-backend/internal/http/response"
	"github.com/trendforge/trendforge-backend/internal/pkg/ctxutil"
	"github.com/trendforge/trendforge-backend/internal/services"
)

type TrendHandler struct {
	trendService services.TrendQueryService
	userService  services.UserService
}

func NewTrendHandler(trendService services.TrendQueryService, userService services.UserService) *TrendHandler {
	return &TrendHandler{trendService: trendService, userService: userService}
}

func queryParams(c *gin.Context) (string, int) {
	sortBy := c.DefaultQuery("sort", trendrepo.SortPopularity)
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultTrendLimit)))
	if err != nil || limit <= 0 {
		limit = services.DefaultTrendLimit
	}
	return sortBy, limit
}

// GET /api/trends
// Lists trends across the caller's preferred niches; all niches when the
// profile has none.
func (th *TrendHandler) List(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	sortBy, limit := queryParams(c)

	niches, err := th.userService.PreferredNiches(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "trends_failed", err)
		return
	}

	trends, err := th.trendService.ListForNiches(c.Request.Context(), niches, sortBy, limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "trends_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"trends": trends})
}

// GET /api/trends/:niche
func (th *TrendHandler) ByNiche(c *gin.Context) {
	niche := c.Param("niche")
	sortBy, limit := queryParams(c)

	trends, err := th.trendService.ListByNiche(c.Request.Context(), niche, sortBy, limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "trends_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"trends": trends})
}
