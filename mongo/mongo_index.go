package mongo

import (
	"context"
	"fmt"
	"time"

	"reward_system/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Activity Collection
	activityCollection := db.Collection(domain.CollectionActivity)
	createIndex(ctx, activityCollection, bson.D{{Key: "name", Value: 1}}, "name", false)
	createIndex(ctx, activityCollection, bson.D{{Key: "status", Value: 1}}, "status", false)

	// Operator Collection：用户名唯一
	operatorCollection := db.Collection(domain.CollectionOperator)
	createIndex(ctx, operatorCollection, bson.D{{Key: "name", Value: 1}}, "name_unique", true)
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
	unique bool,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(unique),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		fmt.Printf("创建索引 '%s' 失败: %v\n", name, err)
	}
}
