package main

import (
	"log"

	"ecomm-gateway/config"
	"ecomm-gateway/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	app.Run(cfg)
}
