package database

import (
	"context"
	"fmt"
	"sales_ledger/config"
	"sales_ledger/internal/logger"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Pool và timeout mặc định cho client MongoDB.
const (
	mongoMaxPoolSize    = 50
	mongoMinPoolSize    = 10
	mongoConnectTimeout = 5 * time.Second
	mongoSocketTimeout  = 10 * time.Second
)

// GetInstance kết nối tới MongoDB theo connection URI trong cấu hình
// và ping kiểm tra trước khi trả về client.
//
// Parameters:
// - c: Cấu hình ứng dụng chứa MongoDB_ConnectionURI
//
// Returns:
// - *mongo.Client: Client đã kết nối và ping thành công
// - error: Lỗi nếu URI rỗng, kết nối thất bại hoặc ping thất bại
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(mongoMaxPoolSize).
		SetMinPoolSize(mongoMinPoolSize).
		SetConnectTimeout(mongoConnectTimeout).
		SetSocketTimeout(mongoSocketTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping để phát hiện sớm URI sai hoặc server không chạy,
	// thay vì lỗi ở request đầu tiên
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance ngắt kết nối client MongoDB khi server shutdown.
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
