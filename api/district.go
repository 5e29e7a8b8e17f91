package api

import (
	"errors"
	"net/http"

	"github.com/G-omar-H/weLovePadel-sub000/internal/district"
	"github.com/gin-gonic/gin"
)

var errNoMatchingDistrict = errors.New("no district matches this city")

func (server *Server) listDistricts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"districts":    server.districtCatalog.Snapshot(),
		"refreshed_at": server.districtCatalog.LastRefreshed(),
	})
}

// suggestDistricts powers autocomplete-as-you-type: top 8 candidates,
// permissive scoring.
func (server *Server) suggestDistricts(ctx *gin.Context) {
	query := ctx.Query("q")

	suggestions := district.Suggest(query, server.districtCatalog.Snapshot())
	if suggestions == nil {
		suggestions = []district.Suggestion{}
	}

	ctx.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// resolveDistrict is the one-shot resolver used on submit: single best match,
// threshold-gated.
func (server *Server) resolveDistrict(ctx *gin.Context) {
	query := ctx.Query("q")

	match, ok := district.Resolve(query, server.districtCatalog.Snapshot())
	if !ok {
		ctx.JSON(http.StatusNotFound, errorResponse(errNoMatchingDistrict))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"district": match.District,
		"score":    match.Score,
	})
}
