package api

import (
	"errors"
	"net/http"

	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type saveCartRequest struct {
	ID    string `json:"id"`
	Items []struct {
		VariationID string `json:"variation_id" binding:"required"`
		Size        string `json:"size"`
		Quantity    int64  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required"`
}

func (server *Server) saveCart(ctx *gin.Context) {
	req := new(saveCartRequest)

	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Error().Err(err).Msg("failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	cart := store.Cart{ID: req.ID}
	if cart.ID == "" {
		cart.ID = util.GenerateCartID()
	}

	for _, item := range req.Items {
		if _, _, err := server.productCatalog.GetVariation(item.VariationID); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(ErrUnknownVariation))
			return
		}
		cart.Items = append(cart.Items, store.CartItem{
			VariationID: item.VariationID,
			Size:        item.Size,
			Quantity:    item.Quantity,
		})
	}

	if err := server.dbStore.SaveCart(ctx, cart); err != nil {
		log.Err(err).Msg("failed to save cart")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

func (server *Server) getCart(ctx *gin.Context) {
	cart, err := server.dbStore.GetCart(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrCartNotFound))
			return
		}
		log.Err(err).Msg("failed to load cart")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

func (server *Server) removeCartItem(ctx *gin.Context) {
	cartID := ctx.Param("id")
	variationID := ctx.Param("variationID")

	cart, err := server.dbStore.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(ErrCartNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.VariationID != variationID {
			items = append(items, item)
		}
	}
	cart.Items = items

	if err = server.dbStore.SaveCart(ctx, *cart); err != nil {
		log.Error().Err(err).Msg("failed to remove cart item")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	ctx.Status(http.StatusNoContent)
}
