package main

import (
	"log"

	"github.com/pawgarden/paw-garden-pet-shop-backend/cmd/server"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/auth"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/config"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/storage"
)

var (
	srvAddr         = config.Env.ServerAddr
	postgresConnStr = config.Env.PostgresConnStr
	adminSecretKey  = config.Env.AdminSecretKey
)

func main() {
	log.SetFlags(log.Ldate | log.Llongfile)

	db, err := storage.NewPostgresDB(postgresConnStr)
	if err != nil {
		log.Fatal(err)
	}

	srv := server.NewServer(&server.ServerConfig{
		Addr: srvAddr,
		DB:   db,
		TokenManager: auth.NewTokenService(
			adminSecretKey,
		),
	},
	)
	srv.Run()
}
