package repository

import (
	"context"
	"errors"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectBudgetFrameworkItem struct {
	Tier string `dynamodbav:"tier,omitempty"`
}

type projectStrategyItem struct {
	BudgetFramework *projectBudgetFrameworkItem `dynamodbav:"budget_framework,omitempty"`
}

type projectOptimizationItem struct {
	IsValid       bool   `dynamodbav:"is_valid"`
	ValidAt       string `dynamodbav:"valid_at,omitempty"`
	InvalidatedAt string `dynamodbav:"invalidated_at,omitempty"`
}

type projectItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Currency string `dynamodbav:"currency,omitempty"`

	Strategy     *projectStrategyItem     `dynamodbav:"strategy,omitempty"`
	Optimization *projectOptimizationItem `dynamodbav:"optimization,omitempty"`
	Estimate     *estimateItem            `dynamodbav:"estimate,omitempty"`
	RateConfig   map[string]float64       `dynamodbav:"rate_config,omitempty"`

	OverheadPercent float64 `dynamodbav:"overhead_percent"`
	MarginPercent   float64 `dynamodbav:"margin_percent"`
	TaxRate         float64 `dynamodbav:"tax_rate"`
	TaxMode         string  `dynamodbav:"tax_mode,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The consolidated estimate lives under the "estimate" attribute of the
// project document. SaveEstimate replaces that one attribute; the rest of
// the document is written by other services and never touched here.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) SaveEstimate(ctx context.Context, projectID string, est entities.ConsolidatedEstimate) (entities.Project, error) {
	estAV, err := attributevalue.MarshalMap(toEstimateItem(est))
	if err != nil {
		return entities.Project{}, err
	}

	return r.update(ctx, projectID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #estimate = :estimate, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":estimate":   &types.AttributeValueMemberM{Value: estAV},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#estimate":   "estimate",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProjectDynamoRepository) FlagEstimateStale(ctx context.Context, projectID, reason string) (entities.Project, error) {
	project, err := r.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	if project.ID == "" || project.Estimate == nil {
		// Nothing to flag; the use case maps the zero/empty cases itself.
		return project, nil
	}

	return r.update(ctx, projectID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #estimate.#is_stale = :stale, #estimate.#stale_reason = :reason, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":stale":      &types.AttributeValueMemberBOOL{Value: true},
			":reason":     &types.AttributeValueMemberS{Value: reason},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#estimate":     "estimate",
			"#is_stale":     "is_stale",
			"#stale_reason": "stale_reason",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProjectDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Project, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.Project{
		ID:              it.ID,
		Name:            it.Name,
		Currency:        it.Currency,
		RateConfig:      it.RateConfig,
		OverheadPercent: it.OverheadPercent,
		MarginPercent:   it.MarginPercent,
		TaxRate:         it.TaxRate,
		TaxMode:         entities.TaxMode(it.TaxMode),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.Strategy != nil {
		s := &entities.Strategy{}
		if it.Strategy.BudgetFramework != nil {
			s.BudgetFramework = &entities.BudgetFramework{
				Tier: entities.BudgetTier(it.Strategy.BudgetFramework.Tier),
			}
		}
		p.Strategy = s
	}
	if it.Optimization != nil {
		p.Optimization = &entities.OptimizationState{
			IsValid:       it.Optimization.IsValid,
			ValidAt:       parseTimePtr(it.Optimization.ValidAt),
			InvalidatedAt: parseTimePtr(it.Optimization.InvalidatedAt),
		}
	}
	if it.Estimate != nil {
		est := fromEstimateItem(*it.Estimate)
		p.Estimate = &est
	}
	return p
}
