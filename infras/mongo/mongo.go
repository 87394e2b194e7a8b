package mongo

import (
	"context"
	"fmt"
	"net"
	"time"

	"checklist/config"
	"checklist/shared/constant"

	"github.com/rs/zerolog/log"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Connection wraps the driver handle for the one database this service uses.
// DB is nil when the in-memory storage backend is selected.
type Connection struct {
	DB *mongodrv.Database
}

func New(config *config.Config) *Connection {
	if config.Storage.Backend != constant.StorageBackendDurable {
		log.Info().Str("backend", config.Storage.Backend).Msg("In-memory storage selected, skipping MongoDB connection")

		return &Connection{}
	}

	uri := connectionURI(config)

	for retry := range config.DB.Mongo.MaxRetry {
		client, err := connect(uri)
		if err == nil {
			log.Info().
				Str("host", config.DB.Mongo.Host).
				Str("port", config.DB.Mongo.Port).
				Str("database", config.DB.Mongo.Database).
				Msg("Connected to MongoDB")

			return &Connection{DB: client.Database(config.DB.Mongo.Database)}
		}

		log.Error().
			Err(err).
			Str("host", config.DB.Mongo.Host).
			Str("port", config.DB.Mongo.Port).
			Int("attempt", retry+1).
			Msg("Failed connecting to MongoDB, retrying")

		time.Sleep(time.Duration(config.DB.Mongo.RetryWaitTime) * time.Second)
	}

	log.Fatal().Msg("Exhausted MongoDB connection retries")

	return nil
}

func connect(uri string) (*mongodrv.Client, error) {
	client, err := mongodrv.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to build MongoDB client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

func connectionURI(config *config.Config) string {
	if config.DB.Mongo.URL != "" {
		return config.DB.Mongo.URL
	}

	return fmt.Sprintf(
		"mongodb://%s:%s@%s",
		config.DB.Mongo.Username,
		config.DB.Mongo.Password,
		net.JoinHostPort(config.DB.Mongo.Host, config.DB.Mongo.Port),
	)
}
