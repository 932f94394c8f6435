//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	bookingHandler "hotel/internal/handlers/booking"
	"hotel/transport/cli"

	bookingLedger "hotel/internal/domains/booking/ledger"
	bookingService "hotel/internal/domains/booking/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	kafka.New,
)

var bookingDomain = wire.NewSet(
	bookingLedger.NewFromConfig,
	bookingService.New,
)

var domains = wire.NewSet(
	bookingDomain,
)

var transport = wire.NewSet(
	bookingHandler.New,
	cli.New,
)

func InitializeService() (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		transport,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}
