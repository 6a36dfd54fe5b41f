package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"reward_system/domain"
	"reward_system/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseMongoRepository MongoDB通用Repository实现
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
}

// NewBaseMongoRepository 创建新的MongoDB Repository实例
func NewBaseMongoRepository[T any](db mongo.Database, collection string) domain.BaseRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
}

// Create 创建新实体，并把生成的ID写回实体
func (r *BaseMongoRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	coll := r.db.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}

	if oid, ok := resultID.(primitive.ObjectID); ok {
		r.setEntityID(entity, oid)
	}
	return nil
}

// GetByID 根据ID获取实体
func (r *BaseMongoRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if id.IsZero() {
		return nil, errors.New("id cannot be empty")
	}

	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return &entity, nil
}

// Update 更新实体（支持 Upsert）
func (r *BaseMongoRepository[T]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	id := r.getEntityID(entity)
	if id.IsZero() {
		return errors.New("entity ID cannot be empty")
	}

	coll := r.db.Collection(r.collection)
	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": entity}, opts)
	if err != nil {
		return fmt.Errorf("failed to update or insert entity: %w", err)
	}
	return nil
}

// Delete 根据ID删除实体；不存在时不报错
func (r *BaseMongoRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return errors.New("id cannot be empty")
	}

	coll := r.db.Collection(r.collection)
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}
	return nil
}

// GetAll 获取全部实体
func (r *BaseMongoRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}

	var entities []*T
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode entities: %w", err)
	}
	return entities, nil
}

// GetOneByFilter 按条件取单个实体；未命中返回 (nil, nil)
func (r *BaseMongoRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return &entity, nil
}

// Count 按条件统计数量
func (r *BaseMongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	coll := r.db.Collection(r.collection)
	return coll.CountDocuments(ctx, filter)
}

// getEntityID 通过反射读取实体的ID字段
func (r *BaseMongoRepository[T]) getEntityID(entity *T) primitive.ObjectID {
	v := reflect.ValueOf(entity).Elem().FieldByName("ID")
	if !v.IsValid() {
		return primitive.NilObjectID
	}
	if id, ok := v.Interface().(primitive.ObjectID); ok {
		return id
	}
	return primitive.NilObjectID
}

// setEntityID 通过反射写回生成的ID
func (r *BaseMongoRepository[T]) setEntityID(entity *T, id primitive.ObjectID) {
	v := reflect.ValueOf(entity).Elem().FieldByName("ID")
	if v.IsValid() && v.CanSet() && v.Type() == reflect.TypeOf(id) {
		v.Set(reflect.ValueOf(id))
	}
}
