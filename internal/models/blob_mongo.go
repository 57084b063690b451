package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	BlobDbName  = "spotify_live"
	BlobColName = "blobs"
)

type blobDocument struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	namespace     string
}

func MongodbNewRepo(mongodbClient *mongo.Client, namespace string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		namespace:     namespace,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}

func (mdb *MongodbRepo) Get(ctx context.Context, key string) ([]byte, error) {
	col, err := mdb.GetCollection(ctx, BlobDbName, BlobColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var doc blobDocument
	err = col.FindOne(ctx, bson.M{"_id": namespaced(mdb.namespace, key)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding blob %s: %w", key, err)
	}
	return doc.Data, nil
}

func (mdb *MongodbRepo) Put(ctx context.Context, key string, data []byte) error {
	col, err := mdb.GetCollection(ctx, BlobDbName, BlobColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	id := namespaced(mdb.namespace, key)
	update := bson.M{
		"$set": bson.M{
			"data":       data,
			"updated_at": time.Now(),
		},
	}
	_, err = col.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error upserting blob %s: %w", key, err)
	}
	return nil
}

func (mdb *MongodbRepo) Delete(ctx context.Context, key string) error {
	col, err := mdb.GetCollection(ctx, BlobDbName, BlobColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}
	_, err = col.DeleteOne(ctx, bson.M{"_id": namespaced(mdb.namespace, key)})
	return err
}

func (mdb *MongodbRepo) Ping(ctx context.Context) error {
	if mdb.mongodbClient == nil {
		return fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Ping(ctx, nil)
}
