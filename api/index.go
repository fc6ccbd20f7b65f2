package api

import (
	"log"
	"net/http"
	"sync"

	"bakery-shop/config"
	"bakery-shop/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		var err error
		router, _, err = routes.Bootstrap(cfg, false)
		if err != nil {
			log.Fatalf("Failed to start bakery API: %v", err)
		}
	})
}

// Handler is the serverless entry point; the connections live as long as
// the function instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
