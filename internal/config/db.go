package config

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectDB establishes a connection to MongoDB
func ConnectDB(cfg *Config) (*mongo.Client, error) {
	var client *mongo.Client
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
			if err == nil {
				cancel()
				log.Info().Str("url", cfg.MongoURL).Msg("connected to MongoDB")
				return client, nil
			}
		}
		cancel()
		log.Warn().Err(err).Int("attempt", i+1).Int("max", maxRetries).
			Dur("retry_in", retryInterval).Msg("failed to connect to database, retrying")
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// EnsureIndexes creates the uniqueness and owner-lookup indexes the
// application relies on. Uniqueness of user name, email and access token is
// enforced here rather than in application code.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "accessToken", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("unable to create user indexes: %w", err)
	}

	_, err = db.Collection("postings").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userName", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("unable to create posting indexes: %w", err)
	}

	_, err = db.Collection("contacts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userName", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("unable to create contact indexes: %w", err)
	}

	log.Info().Msg("database indexes ensured")
	return nil
}
