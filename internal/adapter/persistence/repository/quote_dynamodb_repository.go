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
	defaultQuotesTableName = "quotes"
	quotesProjectIDIndex   = "project_id-index"
	quotesAccessTokenIndex = "access_token-index"
)

type clientQuoteItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	QuoteNumber string `dynamodbav:"quote_number"`

	ClientName  string `dynamodbav:"client_name"`
	ClientEmail string `dynamodbav:"client_email,omitempty"`

	Status      string `dynamodbav:"status"`
	AccessToken string `dynamodbav:"access_token"`

	LineItems []estimateLineItem `dynamodbav:"line_items"`
	Subtotal  int64              `dynamodbav:"subtotal"`
	TaxAmount int64              `dynamodbav:"tax_amount"`
	Total     int64              `dynamodbav:"total"`
	Currency  string             `dynamodbav:"currency"`

	ValidUntil    string `dynamodbav:"valid_until,omitempty"`
	DecidedAt     string `dynamodbav:"decided_at,omitempty"`
	ClientComment string `dynamodbav:"client_comment,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists ClientQuote documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//   - GSI: access_token-index (PK: access_token)
//
// The access-token index backs the unauthenticated client portal lookup.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.ClientQuote) (entities.ClientQuote, error) {
	av, err := attributevalue.MarshalMap(toClientQuoteItem(q))
	if err != nil {
		return entities.ClientQuote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ClientQuote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.ClientQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientQuote{}, nil
	}

	var it clientQuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientQuote{}, err
	}
	return fromClientQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByAccessToken(ctx context.Context, token string) (entities.ClientQuote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesAccessTokenIndex),
		KeyConditionExpression: aws.String("access_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ClientQuote{}, err
	}
	if len(out.Items) == 0 {
		return entities.ClientQuote{}, nil
	}

	var it clientQuoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ClientQuote{}, err
	}
	return fromClientQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ClientQuote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.ClientQuote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it clientQuoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromClientQuoteItem(it))
	}
	return quotes, nil
}

// Update rewrites the whole quote document. Quote mutations always go through
// the use case, which holds the full entity, so a PutItem replace is simpler
// and safer than a field-level update expression here.
func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.ClientQuote) (entities.ClientQuote, error) {
	av, err := attributevalue.MarshalMap(toClientQuoteItem(q))
	if err != nil {
		return entities.ClientQuote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ClientQuote{}, err
	}
	return q, nil
}

func toClientQuoteItem(q entities.ClientQuote) clientQuoteItem {
	return clientQuoteItem{
		ID:            q.ID,
		ProjectID:     q.ProjectID,
		QuoteNumber:   q.QuoteNumber,
		ClientName:    q.ClientName,
		ClientEmail:   q.ClientEmail,
		Status:        string(q.Status),
		AccessToken:   q.AccessToken,
		LineItems:     toEstimateLineItems(q.LineItems),
		Subtotal:      q.Subtotal,
		TaxAmount:     q.TaxAmount,
		Total:         q.Total,
		Currency:      q.Currency,
		ValidUntil:    formatTimePtr(q.ValidUntil),
		DecidedAt:     formatTimePtr(q.DecidedAt),
		ClientComment: q.ClientComment,
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClientQuoteItem(it clientQuoteItem) entities.ClientQuote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ClientQuote{
		ID:            it.ID,
		ProjectID:     it.ProjectID,
		QuoteNumber:   it.QuoteNumber,
		ClientName:    it.ClientName,
		ClientEmail:   it.ClientEmail,
		Status:        entities.QuoteStatus(it.Status),
		AccessToken:   it.AccessToken,
		LineItems:     fromEstimateLineItems(it.LineItems),
		Subtotal:      it.Subtotal,
		TaxAmount:     it.TaxAmount,
		Total:         it.Total,
		Currency:      it.Currency,
		ValidUntil:    parseTimePtr(it.ValidUntil),
		DecidedAt:     parseTimePtr(it.DecidedAt),
		ClientComment: it.ClientComment,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
