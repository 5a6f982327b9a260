package di

import (
	"go.uber.org/zap"

	"insightapi/application/commands/bus"
	"insightapi/application/ports"
	querybus "insightapi/application/queries/bus"
	"insightapi/application/services"
	"insightapi/infrastructure/config"
	"insightapi/pkg/auth"
	"insightapi/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	InsightRepo     ports.InsightRepository
	EventPublisher  ports.EventPublisher
	LanguageModel   ports.LanguageModel
	Generation      *services.GenerationService
	ChartRenderer   ports.ChartRenderer
	ReportAssembler ports.ReportAssembler
	JWTValidator    *auth.JWTValidator
	CommandBus      *bus.CommandBus
	QueryBus        *querybus.QueryBus
	Metrics         *observability.Metrics
}
