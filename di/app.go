package di

import (
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/transport/cli"
)

// App is the wired front desk together with the infrastructure that has to be
// flushed on shutdown.
type App struct {
	CLI   *cli.CLI
	Otel  otel.Otel
	Kafka kafka.Client
}
