package main

import (
	"context"

	"github.com/tucasahr/hr-apigateway/internal/bootstrap"
	"github.com/tucasahr/hr-apigateway/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		panic(err)
	}

	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "server stopped", err)
		panic(err)
	}
}
