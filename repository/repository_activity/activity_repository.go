package repository_activity

import (
	"context"

	"reward_system/domain"
	"reward_system/domain/domain_activity"
	"reward_system/mongo"
	"reward_system/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type activityRepository struct {
	base domain.BaseRepository[domain_activity.Activity]
}

func NewActivityRepository(db mongo.Database, collection string) domain_activity.ActivityRepository {
	return &activityRepository{
		base: repository.NewBaseMongoRepository[domain_activity.Activity](db, collection),
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain_activity.Activity) error {
	if activity.ID.IsZero() {
		activity.ID = primitive.NewObjectID()
	}
	return r.base.Create(ctx, activity)
}

func (r *activityRepository) Fetch(ctx context.Context) ([]domain_activity.Activity, error) {
	items, err := r.base.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	activities := make([]domain_activity.Activity, 0, len(items))
	for _, item := range items {
		activities = append(activities, *item)
	}
	return activities, nil
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain_activity.Activity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain_activity.ErrNotFound
	}
	activity, err := r.base.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, domain_activity.ErrNotFound
	}
	return activity, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *domain_activity.Activity) error {
	return r.base.Update(ctx, activity)
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain_activity.ErrNotFound
	}
	return r.base.Delete(ctx, oid)
}

func (r *activityRepository) Count(ctx context.Context) (int64, error) {
	return r.base.Count(ctx, bson.M{})
}
