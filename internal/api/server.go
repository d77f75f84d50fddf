package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/pantryops/grocery-api/docs"
	v1 "github.com/pantryops/grocery-api/internal/api/handler/v1"
	"github.com/pantryops/grocery-api/internal/api/middleware"
	"github.com/pantryops/grocery-api/internal/config"
	"github.com/pantryops/grocery-api/internal/repository"
	"github.com/pantryops/grocery-api/internal/repository/dao"
	"github.com/pantryops/grocery-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	inventoryHandler := s.initInventoryHandler(db)
	shoppingListHandler := s.initShoppingListHandler(db)
	s.MountHandlers(inventoryHandler, shoppingListHandler)
	s.MountFrontend()

	return s
}

func (s *Server) initInventoryHandler(db *gorm.DB) *v1.InventoryHandler {
	repo := repository.NewItemRepository(dao.NewItemDAO(db))
	transactions := repository.NewTransactionRepository(dao.NewTransactionDAO(db))
	svc := service.NewInventoryService(repo, transactions)
	handler := v1.NewInventoryHandler(svc)

	return handler
}

func (s *Server) initShoppingListHandler(db *gorm.DB) *v1.ShoppingListHandler {
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	transactions := repository.NewTransactionRepository(dao.NewTransactionDAO(db))
	inventorySvc := service.NewInventoryService(itemRepo, transactions)

	repo := repository.NewManualListRepository(dao.NewManualListDAO(db))
	svc := service.NewShoppingListService(repo, inventorySvc)
	handler := v1.NewShoppingListHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(inventoryHandler *v1.InventoryHandler, shoppingListHandler *v1.ShoppingListHandler) {
	const basePath = "/api"

	items := s.Router.Group(basePath)
	{
		items.GET("/items", inventoryHandler.HandleListItems)
		items.POST("/items", inventoryHandler.HandleCreateItem)
		items.GET("/items/low", inventoryHandler.HandleListLowItems)
		items.PUT("/items/:itemID", inventoryHandler.HandleUpdateItem)
		items.DELETE("/items/:itemID", inventoryHandler.HandleDeleteItem)
		items.GET("/transactions", inventoryHandler.HandleListTransactions)
	}

	shopping := s.Router.Group(basePath)
	{
		shopping.GET("/shopping-list", shoppingListHandler.HandleGetShoppingList)
		shopping.POST("/manual-add", shoppingListHandler.HandleManualAdd)
		shopping.POST("/mark-bought", shoppingListHandler.HandleMarkBought)
	}

	s.Router.GET(basePath+"/healthcheck", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Grocery Inventory API"
	docs.SwaggerInfo.Description = "Household grocery inventory tracker with low-stock detection and a combined shopping list."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// MountFrontend serves the static assets. The root path redirects to /home
// and unknown paths fall through to the file server.
func (s *Server) MountFrontend() {
	dir := s.Config.API.FrontendDir

	s.Router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/home")
	})
	s.Router.GET("/home", func(ctx *gin.Context) {
		ctx.File(filepath.Join(dir, "home.html"))
	})
	s.Router.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))
}
