package api

import (
	"errors"
	"net/http"

	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (server *Server) getOrder(ctx *gin.Context) {
	order, err := server.dbStore.GetOrder(ctx, ctx.Param("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrOrderNotFound))
			return
		}
		log.Err(err).Msg("failed to load order")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, order)
}
