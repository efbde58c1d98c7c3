package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"atelier_couture/internal/domain/entities"
	"atelier_couture/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID           string `dynamodbav:"id"`
	ClientName   string `dynamodbav:"client_name"`
	Model        string `dynamodbav:"model"`
	FabricColor  string `dynamodbav:"fabric_color"`
	Size         string `dynamodbav:"size"`
	FabricPrice  string `dynamodbav:"fabric_price"`
	SellingPrice string `dynamodbav:"selling_price"`
	Profit       string `dynamodbav:"profit"`

	OrderCount       *int    `dynamodbav:"order_count,omitempty"`
	AdvancePayment   *string `dynamodbav:"advance_payment,omitempty"`
	DeliveryDate     *string `dynamodbav:"delivery_date,omitempty"`
	DeliveryLocation string  `dynamodbav:"delivery_location,omitempty"`
	ModelImage       string  `dynamodbav:"model_image,omitempty"`
	Status           *int    `dynamodbav:"status,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing is a full scan sorted newest-first in memory. The backend holds a
// single small business's orders, so query pushdown is not worth a GSI here.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

// Update rewrites the whole record. Edits always resubmit the full editable
// field set, so a targeted update expression would buy nothing here.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:               o.ID,
		ClientName:       o.ClientName,
		Model:            o.Model,
		FabricColor:      o.FabricColor,
		Size:             o.Size,
		FabricPrice:      floatToString(o.FabricPrice),
		SellingPrice:     floatToString(o.SellingPrice),
		Profit:           floatToString(o.Profit),
		OrderCount:       o.OrderCount,
		DeliveryLocation: o.DeliveryLocation,
		ModelImage:       o.ModelImage,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.AdvancePayment != nil {
		s := floatToString(*o.AdvancePayment)
		it.AdvancePayment = &s
	}
	if o.DeliveryDate != nil {
		s := o.DeliveryDate.Format(dateLayout)
		it.DeliveryDate = &s
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	o := entities.Order{
		ID:               it.ID,
		ClientName:       it.ClientName,
		Model:            it.Model,
		FabricColor:      it.FabricColor,
		Size:             it.Size,
		FabricPrice:      stringToFloat(it.FabricPrice),
		SellingPrice:     stringToFloat(it.SellingPrice),
		Profit:           stringToFloat(it.Profit),
		OrderCount:       it.OrderCount,
		DeliveryLocation: it.DeliveryLocation,
		ModelImage:       it.ModelImage,
		Status:           it.Status,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	if it.AdvancePayment != nil {
		v := stringToFloat(*it.AdvancePayment)
		o.AdvancePayment = &v
	}
	if it.DeliveryDate != nil {
		// A malformed stored date degrades to "no delivery date"; downstream
		// date predicates then simply never match the record.
		if d, err := time.Parse(dateLayout, *it.DeliveryDate); err == nil {
			o.DeliveryDate = &d
		}
	}
	return o
}
