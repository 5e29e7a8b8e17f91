package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (server *Server) listProducts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, server.productCatalog.List())
}

func (server *Server) getProduct(ctx *gin.Context) {
	product, err := server.productCatalog.GetBySlug(ctx.Param("slug"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, product)
}
