package repository

import (
	"context"
	"encoding/json"
	"time"

	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type settingsItem struct {
	ID        string `dynamodbav:"id"`
	Data      string `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository persists the global AppSettings record.
//
// Table requirements:
//   - PK: id (string); the record lives at id = entities.SettingsKey
//   - data holds the settings as an opaque JSON blob

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.AppSettings, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.SettingsKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AppSettings{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.AppSettings{}, false, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AppSettings{}, true, err
	}
	var s entities.AppSettings
	if err := json.Unmarshal([]byte(it.Data), &s); err != nil {
		return entities.AppSettings{}, true, err
	}
	return s, true, nil
}

// Upsert overwrites the whole record; there is no merge and no version check.
func (r *SettingsDynamoRepository) Upsert(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return entities.AppSettings{}, err
	}
	av, err := attributevalue.MarshalMap(settingsItem{
		ID:        entities.SettingsKey,
		Data:      string(data),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.AppSettings{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.AppSettings{}, err
	}
	return s, nil
}
