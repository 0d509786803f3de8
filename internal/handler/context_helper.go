package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recoleta-app/collector-api/internal/middleware"
	"github.com/recoleta-app/collector-api/internal/models"
	"github.com/recoleta-app/collector-api/internal/service"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

func tokenFromContext(c *gin.Context) string {
	value, exists := c.Get(middleware.ContextTokenKey)
	if !exists {
		return ""
	}
	token, _ := value.(string)
	return token
}

// identityFromContext resolves the authenticated collector. The JWT
// middleware guarantees both values on protected routes; the ok return
// guards handlers mounted without it.
func identityFromContext(c *gin.Context) (int64, string, *models.JWTClaims, bool) {
	claims := claimsFromContext(c)
	if claims == nil {
		return 0, "", nil, false
	}
	collectorID, ok := claims.ResolveCollectorID()
	if !ok {
		return 0, "", nil, false
	}
	return collectorID, tokenFromContext(c), claims, true
}

// parseFilterCriteria reads list/drill-down filters from the query string.
func parseFilterCriteria(c *gin.Context) service.FilterCriteria {
	criteria := service.FilterCriteria{
		Status:    models.DiscardStatus(strings.ToUpper(strings.TrimSpace(c.Query("status")))),
		Mode:      models.DiscardMode(strings.ToUpper(strings.TrimSpace(c.Query("mode")))),
		Category:  models.ReportCategory(strings.ToLower(strings.TrimSpace(c.Query("category")))),
		Text:      strings.TrimSpace(c.Query("q")),
		BucketKey: strings.TrimSpace(c.Query("bucket")),
	}
	if strings.EqualFold(strings.TrimSpace(c.Query("view")), string(service.BucketViewWeekly)) {
		criteria.BucketView = service.BucketViewWeekly
	} else {
		criteria.BucketView = service.BucketViewMonthly
	}
	return criteria
}
