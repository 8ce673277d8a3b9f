//go:build wireinject
// +build wireinject

package main

import (
	"Notely/config"
	"Notely/dao"
	"Notely/handler"
	"Notely/pkg/database"
	"Notely/pkg/server"
	"Notely/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		server.NewGinEngine,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Home), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
