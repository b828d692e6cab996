//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/squadronxfr/redis-tp-ipssi/internal/biz"
	"github.com/squadronxfr/redis-tp-ipssi/internal/conf"
	"github.com/squadronxfr/redis-tp-ipssi/internal/data"
	"github.com/squadronxfr/redis-tp-ipssi/internal/server"
	"github.com/squadronxfr/redis-tp-ipssi/internal/service"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(*conf.Server, *conf.Data, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(server.ProviderSet, data.ProviderSet, biz.ProviderSet, service.ProviderSet, newApp))
}
