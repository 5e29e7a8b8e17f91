package api

import (
	"fmt"

	"github.com/G-omar-H/weLovePadel-sub000/internal/catalog"
	"github.com/G-omar-H/weLovePadel-sub000/internal/delivery"
	"github.com/G-omar-H/weLovePadel-sub000/internal/district"
	"github.com/G-omar-H/weLovePadel-sub000/internal/paypal"
	"github.com/G-omar-H/weLovePadel-sub000/internal/store"
	"github.com/G-omar-H/weLovePadel-sub000/internal/util"
	"github.com/G-omar-H/weLovePadel-sub000/internal/worker"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	router          *gin.Engine
	config          *util.Config
	dbStore         store.Store
	productCatalog  *catalog.Catalog
	districtCatalog *district.Catalog
	orchestrator    *delivery.Orchestrator
	builderConfig   delivery.BuilderConfig
	paypalService   *paypal.Client
	taskDistributor worker.TaskDistributor
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(
	config *util.Config,
	dbStore store.Store,
	productCatalog *catalog.Catalog,
	districtCatalog *district.Catalog,
	courier delivery.Courier,
	paypalService *paypal.Client,
	taskDistributor worker.TaskDistributor,
) (*Server, error) {
	if config.SenditPickupDistrictID <= 0 {
		return nil, fmt.Errorf("pickup district id is not configured")
	}
	// cors.New panics on an empty origin list; surface the misconfiguration
	// as a startup error instead.
	if len(config.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("allowed origins are not configured")
	}

	server := &Server{
		config:          config,
		dbStore:         dbStore,
		productCatalog:  productCatalog,
		districtCatalog: districtCatalog,
		orchestrator:    delivery.NewOrchestrator(courier),
		builderConfig: delivery.BuilderConfig{
			PickupDistrictID: config.SenditPickupDistrictID,
			StockDelivery:    config.SenditStockDelivery,
			CodeMap:          catalog.StockCodes(),
		},
		paypalService:   paypalService,
		taskDistributor: taskDistributor,
	}

	server.setupRouter()
	log.Info().Msg("HTTP server routes configured ✅")
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	v1.GET("/products", server.listProducts)
	v1.GET("/products/:slug", server.getProduct)

	v1.GET("/districts", server.listDistricts)
	v1.GET("/districts/suggest", server.suggestDistricts)
	v1.GET("/districts/resolve", server.resolveDistrict)

	v1.POST("/cart", server.saveCart)
	v1.GET("/cart/:id", server.getCart)
	v1.DELETE("/cart/:id/items/:variationID", server.removeCartItem)

	v1.POST("/paypal/orders", server.createPaypalOrder)
	v1.POST("/paypal/orders/:id/capture", server.capturePaypalOrder)

	v1.POST("/checkout", server.checkout)
	v1.GET("/orders/:code", server.getOrder)

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
