package repository

import (
	"context"
	"time"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkItemsTableName = "work_items"
	workItemsProjectIDIndex   = "project_id-index"
)

type workItemItem struct {
	ID               string  `dynamodbav:"id"`
	ProjectID        string  `dynamodbav:"project_id"`
	Name             string  `dynamodbav:"name"`
	Category         string  `dynamodbav:"category,omitempty"`
	SourcingType     string  `dynamodbav:"sourcing_type"`
	RequiredQuantity float64 `dynamodbav:"required_quantity"`
	SortOrder        *int    `dynamodbav:"sort_order,omitempty"`

	Manufacturing *entities.ManufacturingCosting `dynamodbav:"manufacturing,omitempty"`
	Procurement   *entities.ProcurementCosting   `dynamodbav:"procurement,omitempty"`
	Architectural *entities.ArchitecturalCosting `dynamodbav:"architectural,omitempty"`
	Construction  *entities.ConstructionCosting  `dynamodbav:"construction,omitempty"`

	BudgetTracking  *entities.BudgetTracking  `dynamodbav:"budget_tracking,omitempty"`
	StrategyContext *entities.StrategyContext `dynamodbav:"strategy_context,omitempty"`

	UpdatedAt        string `dynamodbav:"updated_at"`
	CostingUpdatedAt string `dynamodbav:"costing_updated_at,omitempty"`
}

// WorkItemDynamoRepository reads WorkItem documents from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// Work items are written by the scope-management service; the pricing
// service only reads them.

type WorkItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkItemRepository = (*WorkItemDynamoRepository)(nil)

func NewWorkItemDynamoRepository(ddb *dynamodb.Client) *WorkItemDynamoRepository {
	return &WorkItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ITEMS_TABLE", defaultWorkItemsTableName),
	}
}

func (r *WorkItemDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.WorkItem, error) {
	var (
		items    []entities.WorkItem
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(workItemsProjectIDIndex),
			KeyConditionExpression: aws.String("project_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: projectID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it workItemItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromWorkItemItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func fromWorkItemItem(it workItemItem) entities.WorkItem {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.WorkItem{
		ID:               it.ID,
		ProjectID:        it.ProjectID,
		Name:             it.Name,
		Category:         it.Category,
		SourcingType:     entities.SourcingType(it.SourcingType),
		RequiredQuantity: it.RequiredQuantity,
		SortOrder:        it.SortOrder,
		Manufacturing:    it.Manufacturing,
		Procurement:      it.Procurement,
		Architectural:    it.Architectural,
		Construction:     it.Construction,
		BudgetTracking:   it.BudgetTracking,
		StrategyContext:  it.StrategyContext,
		UpdatedAt:        updatedAt,
		CostingUpdatedAt: parseTimePtr(it.CostingUpdatedAt),
	}
}
