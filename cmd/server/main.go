package main

import (
	"net/http"

	"ramba-be/internal/config"
	"ramba-be/internal/db"
	"ramba-be/internal/logger"
	"ramba-be/internal/order"
	"ramba-be/internal/product"
	"ramba-be/internal/transport"
	"ramba-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	router := transport.NewRouter(&transport.Handlers{
		UserSvc:    userSvc,
		ProductSvc: productSvc,
		OrderSvc:   orderSvc,
		Env:        cfg.AppEnv,
	})

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
