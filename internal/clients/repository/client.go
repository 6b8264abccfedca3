package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	clientserrors "roomly/internal/clients/errors"
	"roomly/pkg/config"
	"roomly/pkg/model"
)

const (
	CollectionName = "clients"
)

type mongoClientRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
}

type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	FindByID(ctx context.Context, id int) (*model.Client, error)
	FindAll(ctx context.Context) ([]*model.Client, error)
	Count(ctx context.Context) (int64, error)
	NextID(ctx context.Context) (int, error)
}

func NewMongoClientRepository(cfg *config.Config) ClientRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoClientRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoClientRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoClientRepository) Create(ctx context.Context, client *model.Client) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

func (r *mongoClientRepository) FindByID(ctx context.Context, id int) (*model.Client, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var client model.Client
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %d", clientserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return &client, nil
}

func (r *mongoClientRepository) FindAll(ctx context.Context) ([]*model.Client, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []*model.Client
	if err = cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}

	return clients, nil
}

func (r *mongoClientRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

func (r *mongoClientRepository) NextID(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})

	var last model.Client
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to determine next client ID: %w", err)
	}

	return last.ClientID + 1, nil
}
