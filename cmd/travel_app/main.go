package main

import (
	"log"

	"github.com/tribertmuto/alx-travel-app-0x01/internal/app"
	"github.com/tribertmuto/alx-travel-app-0x01/internal/config"
)

// @title                       Travel App API
// @version                     1.0
// @description                 Listings, bookings and reviews for short-term stays.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
