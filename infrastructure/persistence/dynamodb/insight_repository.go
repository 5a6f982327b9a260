package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"insightapi/application/ports"
	"insightapi/domain/analysis"
	"insightapi/domain/insight"
	pkgerrors "insightapi/pkg/errors"
	"insightapi/pkg/utils"
)

// InsightRepository implements ports.InsightRepository on a DynamoDB
// single-table layout: PK "USER#<userID>", SK "INSIGHT#<insightID>".
// Every access path carries the user key, so one user can never read or
// delete another user's records.
type InsightRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewInsightRepository creates a new InsightRepository
func NewInsightRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.InsightRepository {
	return &InsightRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// insightItem represents the DynamoDB item structure for an insight
type insightItem struct {
	PK            string        `dynamodbav:"PK"`
	SK            string        `dynamodbav:"SK"`
	EntityType    string        `dynamodbav:"EntityType"`
	InsightID     string        `dynamodbav:"InsightID"`
	UserID        string        `dynamodbav:"UserID"`
	Description   string        `dynamodbav:"Description"`
	Mode          string        `dynamodbav:"Mode"`
	Kind          string        `dynamodbav:"Kind"`
	Strengths     []string      `dynamodbav:"Strengths"`
	Weaknesses    []string      `dynamodbav:"Weaknesses"`
	Opportunities []string      `dynamodbav:"Opportunities"`
	Threats       []string      `dynamodbav:"Threats"`
	Series        []seriesEntry `dynamodbav:"Series"`
	CreatedAt     string        `dynamodbav:"CreatedAt"`
}

type seriesEntry struct {
	Label  string `dynamodbav:"Label"`
	Weight int    `dynamodbav:"Weight"`
}

func userPK(userID string) string       { return fmt.Sprintf("USER#%s", userID) }
func insightSK(insightID string) string { return fmt.Sprintf("INSIGHT#%s", insightID) }

// Save persists an insight
func (r *InsightRepository) Save(ctx context.Context, ins *insight.Insight) error {
	item := toItem(ins)

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewPersistenceError("save", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save insight to DynamoDB",
			zap.Error(err),
			zap.String("insightID", ins.ID),
		)
		return pkgerrors.NewPersistenceError("save", err)
	}

	r.logger.Debug("Insight saved to DynamoDB",
		zap.String("insightID", ins.ID),
		zap.String("userID", ins.UserID),
	)

	return nil
}

// GetByID retrieves one insight scoped to its owner
func (r *InsightRepository) GetByID(ctx context.Context, userID, insightID string) (*insight.Insight, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(userID)},
			"SK": &types.AttributeValueMemberS{Value: insightSK(insightID)},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, pkgerrors.NewPersistenceError("get", err)
	}

	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("insight")
	}

	var item insightItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, pkgerrors.NewPersistenceError("get", err)
	}

	return fromItem(item)
}

// ListByUser retrieves all insights for a user, in store order
func (r *InsightRepository) ListByUser(ctx context.Context, userID string) ([]*insight.Insight, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(userPK(userID))).
		And(expression.Key("SK").BeginsWith("INSIGHT#"))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewPersistenceError("list", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, pkgerrors.NewPersistenceError("list", err)
	}

	insights := make([]*insight.Insight, 0, len(result.Items))
	for _, raw := range result.Items {
		var item insightItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal insight item", zap.Error(err))
			continue
		}
		ins, err := fromItem(item)
		if err != nil {
			r.logger.Warn("Failed to reconstruct insight",
				zap.String("insightID", item.InsightID),
				zap.Error(err))
			continue
		}
		insights = append(insights, ins)
	}

	return insights, nil
}

// Delete removes an insight. A conditional write distinguishes "record
// did not exist" from transport failures, so deleting a missing or
// foreign id surfaces as NotFound.
func (r *InsightRepository) Delete(ctx context.Context, userID, insightID string) error {
	cond := expression.AttributeExists(expression.Name("PK"))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return pkgerrors.NewPersistenceError("delete", err)
	}

	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(userID)},
			"SK": &types.AttributeValueMemberS{Value: insightSK(insightID)},
		},
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return pkgerrors.NewNotFoundError("insight")
		}
		return pkgerrors.NewPersistenceError("delete", err)
	}

	r.logger.Debug("Insight deleted",
		zap.String("insightID", insightID),
		zap.String("userID", userID),
	)

	return nil
}

func toItem(ins *insight.Insight) insightItem {
	series := make([]seriesEntry, 0, len(ins.Series))
	for _, p := range ins.Series {
		series = append(series, seriesEntry{Label: string(p.Label), Weight: p.Weight})
	}

	return insightItem{
		PK:            userPK(ins.UserID),
		SK:            insightSK(ins.ID),
		EntityType:    "INSIGHT",
		InsightID:     ins.ID,
		UserID:        ins.UserID,
		Description:   ins.Request.Description,
		Mode:          string(ins.Request.Mode),
		Kind:          string(ins.Request.Kind),
		Strengths:     ins.Record.Strengths,
		Weaknesses:    ins.Record.Weaknesses,
		Opportunities: ins.Record.Opportunities,
		Threats:       ins.Record.Threats,
		Series:        series,
		CreatedAt:     utils.FormatRFC3339(ins.CreatedAt),
	}
}

func fromItem(item insightItem) (*insight.Insight, error) {
	createdAt, err := utils.ParseRFC3339(item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid CreatedAt %q: %w", item.CreatedAt, err)
	}

	series := make(analysis.ChartSeries, 0, len(item.Series))
	for _, e := range item.Series {
		series = append(series, analysis.ChartPoint{Label: analysis.Category(e.Label), Weight: e.Weight})
	}

	return &insight.Insight{
		ID:     item.InsightID,
		UserID: item.UserID,
		Request: insight.RequestSnapshot{
			Description: item.Description,
			Mode:        analysis.Mode(item.Mode),
			Kind:        analysis.Kind(item.Kind),
		},
		Record: analysis.Record{
			Strengths:     item.Strengths,
			Weaknesses:    item.Weaknesses,
			Opportunities: item.Opportunities,
			Threats:       item.Threats,
		},
		Series:    series,
		CreatedAt: createdAt,
	}, nil
}
