package repository

import (
	"context"
	"math"

	"atelier_ops/internal/domain/entities"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMaterialsTableName = "materials"
	materialsNameIndex        = "name-index"
)

// Thickness values in the inventory and incoming cutlists are both nominal
// millimetres; tolerate sub-millimetre drift when matching.
const thicknessMatchToleranceMM = 0.5

type sheetMaterialItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	ThicknessMM   float64 `dynamodbav:"thickness_mm"`
	PricePerSheet float64 `dynamodbav:"price_per_sheet"`
}

// MaterialDynamoRepository reads the centralized sheet-material inventory.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name)

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

// GetPrice resolves a sheet price by material name and thickness. found=false
// means no matching record exists; a zero price on an existing record is a
// legitimate answer and reported with found=true.
func (r *MaterialDynamoRepository) GetPrice(ctx context.Context, name string, thicknessMM float64) (float64, bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(materialsNameIndex),
		KeyConditionExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		return 0, false, err
	}

	for _, raw := range out.Items {
		var it sheetMaterialItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return 0, false, err
		}
		if math.Abs(it.ThicknessMM-thicknessMM) <= thicknessMatchToleranceMM {
			return it.PricePerSheet, true, nil
		}
	}
	return 0, false, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.SheetMaterial, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SheetMaterial{}, err
	}
	if len(out.Item) == 0 {
		return entities.SheetMaterial{}, nil
	}

	var it sheetMaterialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SheetMaterial{}, err
	}
	return entities.SheetMaterial(it), nil
}
