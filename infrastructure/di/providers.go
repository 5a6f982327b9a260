package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"insightapi/application/commands"
	"insightapi/application/commands/bus"
	commands_handlers "insightapi/application/commands/handlers"
	"insightapi/application/ports"
	"insightapi/application/queries"
	querybus "insightapi/application/queries/bus"
	queries_handlers "insightapi/application/queries/handlers"
	"insightapi/application/services"
	"insightapi/infrastructure/config"
	"insightapi/infrastructure/language"
	"insightapi/infrastructure/messaging/eventbridge"
	"insightapi/infrastructure/persistence/dynamodb"
	"insightapi/infrastructure/persistence/memory"
	"insightapi/infrastructure/report"
	"insightapi/pkg/auth"
	"insightapi/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideInsightRepository creates the insight store. Local development
// can opt into the in-process store; production always uses DynamoDB.
func ProvideInsightRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.InsightRepository {
	if cfg.UseMemoryStore {
		return memory.NewInsightRepository()
	}
	return dynamodb.NewInsightRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEventPublisher creates an event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if !cfg.EnableEvents {
		return eventbridge.NoopPublisher{}
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates metrics instance. A nil Metrics is valid and
// records nothing.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}
	namespace := fmt.Sprintf("InsightAPI/%s", cfg.Environment)
	return observability.NewMetrics(namespace, client)
}

// ProvideLanguageModel creates the configured text-completion backend
func ProvideLanguageModel(ctx context.Context, cfg *config.Config) (ports.LanguageModel, error) {
	return language.New(ctx, cfg)
}

// ProvideBackendRateLimiter creates the outbound rate limiter for
// language backend calls
func ProvideBackendRateLimiter(cfg *config.Config) *rate.Limiter {
	rpm := cfg.LLMRPM
	if rpm <= 0 {
		rpm = 60
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
}

// ProvideTracer creates the X-Ray tracer. Tracing only runs where a
// daemon is present, so it stays off outside production.
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.IsProduction() {
		return nil
	}
	return observability.NewTracer("insightapi")
}

// ProvideGenerationService creates the analysis generation service
func ProvideGenerationService(
	model ports.LanguageModel,
	limiter *rate.Limiter,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *services.GenerationService {
	return services.NewGenerationService(model, limiter, metrics, tracer, logger)
}

// ProvideChartRenderer creates the chart renderer
func ProvideChartRenderer() ports.ChartRenderer {
	return report.NewChartImageRenderer()
}

// ProvideReportAssembler creates the PDF report assembler
func ProvideReportAssembler(charts ports.ChartRenderer, logger *zap.Logger) ports.ReportAssembler {
	return report.NewPDFAssembler(charts, logger)
}

// ProvideJWTValidator creates the token validator. Config validation
// already requires a real secret in production; the fallback only ever
// serves local development.
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		secret = "development-secret-change-in-production"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
		Audience:  []string{cfg.JWTAudience},
	})
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	repo ports.InsightRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	saveHandler := commands_handlers.NewSaveInsightHandler(repo, publisher, logger)
	commandBus.Register(commands.SaveInsightCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			saveCmd, ok := cmd.(commands.SaveInsightCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return saveHandler.Handle(ctx, saveCmd)
		},
	})

	deleteHandler := commands_handlers.NewDeleteInsightHandler(repo, publisher, logger)
	commandBus.Register(commands.DeleteInsightCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteInsightCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteHandler.Handle(ctx, deleteCmd)
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	repo ports.InsightRepository,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	listHandler := queries_handlers.NewListInsightsHandler(repo, logger)
	queryBus.Register(queries.ListInsightsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListInsightsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listHandler.Handle(ctx, listQuery)
		},
	})

	getHandler := queries_handlers.NewGetInsightHandler(repo, logger)
	queryBus.Register(queries.GetInsightQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetInsightQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getHandler.Handle(ctx, getQuery)
		},
	})

	return queryBus
}
