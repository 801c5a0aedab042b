package main

import (
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"starblog/internal/config"
	"starblog/internal/database"
	"starblog/internal/middleware"
	"starblog/internal/modules/catalog"
	"starblog/internal/modules/favorite"
	"starblog/internal/modules/user"
	"starblog/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	catalogService := catalog.NewService(characterRepo, planetRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	favoriteService := favorite.NewService(favoriteRepo, userRepo, characterRepo, planetRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.ErrorLogger(), middleware.CORS())

	root := r.Group("")
	{
		userHandler.RegisterRoutes(root)
		catalogHandler.RegisterRoutes(root)
		favoriteHandler.RegisterRoutes(root)
	}

	// route listing at /, in place of the original HTML sitemap
	r.GET("/", sitemap(r))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		type route struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		}

		routes := make([]route, 0, len(r.Routes()))
		for _, ri := range r.Routes() {
			if ri.Path == "/" {
				continue
			}
			routes = append(routes, route{Method: ri.Method, Path: ri.Path})
		}
		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path != routes[j].Path {
				return routes[i].Path < routes[j].Path
			}
			return routes[i].Method < routes[j].Method
		})

		c.JSON(http.StatusOK, gin.H{"ok": true, "data": routes})
	}
}
