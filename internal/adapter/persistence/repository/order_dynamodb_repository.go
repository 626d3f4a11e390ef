package repository

import (
	"context"
	"time"

	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type checklistItemItem struct {
	ID          string `dynamodbav:"id"`
	Label       string `dynamodbav:"label"`
	IsCompleted bool   `dynamodbav:"is_completed"`
}

type serviceItem struct {
	ID          string              `dynamodbav:"id"`
	Description string              `dynamodbav:"description"`
	Price       float64             `dynamodbav:"price"`
	Status      string              `dynamodbav:"status"`
	Checklist   []checklistItemItem `dynamodbav:"checklist"`
}

type paymentItem struct {
	ID          string  `dynamodbav:"id"`
	Amount      float64 `dynamodbav:"amount"`
	Date        string  `dynamodbav:"date"`
	Description string  `dynamodbav:"description,omitempty"`
}

type orderItem struct {
	ID                    string        `dynamodbav:"id"`
	OrderNumber           string        `dynamodbav:"order_number"`
	CustomerName          string        `dynamodbav:"customer_name"`
	CustomerContact       string        `dynamodbav:"customer_contact"`
	CustomerPhone         string        `dynamodbav:"customer_phone"`
	InstrumentType        string        `dynamodbav:"instrument_type"`
	InstrumentBrand       string        `dynamodbav:"instrument_brand"`
	Services              []serviceItem `dynamodbav:"services"`
	Payments              []paymentItem `dynamodbav:"payments"`
	EntryDate             string        `dynamodbav:"entry_date"`
	DeliveryDate          string        `dynamodbav:"delivery_date"`
	Status                string        `dynamodbav:"status"`
	Notes                 string        `dynamodbav:"notes"`
	HandwrittenNoteImages []string      `dynamodbav:"handwritten_note_images"`
	LuthierID             string        `dynamodbav:"luthier_id,omitempty"`
	UpdatedAt             string        `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists ServiceOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole aggregate is one item; updates replace the item. Listing scans
// the table and orders by entry_date, which is fine for a single workshop.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	orders := make([]entities.ServiceOrder, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	sortByEntryDateDesc(orders)
	return orders, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if err := r.put(ctx, o, "attribute_not_exists(#id)"); err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

// Update replaces the stored order. A missing order yields a zero value.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	if err := r.put(ctx, o, "attribute_exists(#id)"); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *OrderDynamoRepository) put(ctx context.Context, o entities.ServiceOrder, condition string) error {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toOrderItem(o entities.ServiceOrder) orderItem {
	services := make([]serviceItem, 0, len(o.Services))
	for _, s := range o.Services {
		checklist := make([]checklistItemItem, 0, len(s.Checklist))
		for _, c := range s.Checklist {
			checklist = append(checklist, checklistItemItem{ID: c.ID, Label: c.Label, IsCompleted: c.IsCompleted})
		}
		services = append(services, serviceItem{
			ID:          s.ID,
			Description: s.Description,
			Price:       float64(s.Price.Sanitized()),
			Status:      string(s.Status),
			Checklist:   checklist,
		})
	}

	payments := make([]paymentItem, 0, len(o.Payments))
	for _, p := range o.Payments {
		payments = append(payments, paymentItem{
			ID:          p.ID,
			Amount:      float64(p.Amount.Sanitized()),
			Date:        p.Date.UTC().Format(time.RFC3339Nano),
			Description: p.Description,
		})
	}

	images := o.HandwrittenNoteImages
	if images == nil {
		images = []string{}
	}

	return orderItem{
		ID:                    o.ID,
		OrderNumber:           o.OrderNumber,
		CustomerName:          o.Customer.Name,
		CustomerContact:       o.Customer.Contact,
		CustomerPhone:         o.Customer.Phone,
		InstrumentType:        o.Instrument.Type,
		InstrumentBrand:       o.Instrument.Brand,
		Services:              services,
		Payments:              payments,
		EntryDate:             o.EntryDate,
		DeliveryDate:          o.DeliveryDate,
		Status:                string(o.Status),
		Notes:                 o.Notes,
		HandwrittenNoteImages: images,
		LuthierID:             o.LuthierID,
		UpdatedAt:             time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.ServiceOrder {
	services := make([]entities.Service, 0, len(it.Services))
	for _, s := range it.Services {
		checklist := make([]entities.ChecklistItem, 0, len(s.Checklist))
		for _, c := range s.Checklist {
			checklist = append(checklist, entities.ChecklistItem{ID: c.ID, Label: c.Label, IsCompleted: c.IsCompleted})
		}
		services = append(services, entities.Service{
			ID:          s.ID,
			Description: s.Description,
			Price:       entities.Amount(s.Price).Sanitized(),
			Status:      entities.ServiceStatus(s.Status),
			Checklist:   checklist,
		})
	}

	payments := make([]entities.Payment, 0, len(it.Payments))
	for _, p := range it.Payments {
		dt, _ := time.Parse(time.RFC3339Nano, p.Date)
		payments = append(payments, entities.Payment{
			ID:          p.ID,
			Amount:      entities.Amount(p.Amount).Sanitized(),
			Date:        dt,
			Description: p.Description,
		})
	}

	o := entities.ServiceOrder{
		ID:                    it.ID,
		OrderNumber:           it.OrderNumber,
		Customer:              entities.CustomerInfo{Name: it.CustomerName, Contact: it.CustomerContact, Phone: it.CustomerPhone},
		Instrument:            entities.InstrumentInfo{Type: it.InstrumentType, Brand: it.InstrumentBrand},
		Services:              services,
		Payments:              payments,
		EntryDate:             it.EntryDate,
		DeliveryDate:          it.DeliveryDate,
		Status:                entities.OrderStatus(it.Status),
		Notes:                 it.Notes,
		HandwrittenNoteImages: it.HandwrittenNoteImages,
		LuthierID:             it.LuthierID,
	}
	o.Normalize()
	return o
}
