package surreal

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
)

type Client struct {
	DB  *surrealdb.DB
	log *logger.Logger
}

// NewFromEnv connects to SurrealDB using SURREALDB_* environment
// variables. It returns (nil, nil) when SURREALDB_URL is unset so the
// caller can fall back to the in-memory store.
func NewFromEnv(log *logger.Logger) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("surreal: logger required")
	}

	url := strings.TrimSpace(os.Getenv("SURREALDB_URL"))
	if url == "" {
		return nil, nil
	}

	namespace := strings.TrimSpace(os.Getenv("SURREALDB_NS"))
	if namespace == "" {
		namespace = "realista"
	}
	database := strings.TrimSpace(os.Getenv("SURREALDB_DB"))
	if database == "" {
		database = "realista"
	}
	user := strings.TrimSpace(os.Getenv("SURREALDB_USER"))
	pass := strings.TrimSpace(os.Getenv("SURREALDB_PASS"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := surrealdb.FromEndpointURLString(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("surreal: connect: %w", err)
	}

	if err := db.Use(ctx, namespace, database); err != nil {
		return nil, fmt.Errorf("surreal: use %s/%s: %w", namespace, database, err)
	}

	if user != "" {
		token, err := db.SignIn(ctx, &surrealdb.Auth{Username: user, Password: pass})
		if err != nil {
			return nil, fmt.Errorf("surreal: signin: %w", err)
		}
		if err := db.Authenticate(ctx, token); err != nil {
			return nil, fmt.Errorf("surreal: authenticate: %w", err)
		}
	}

	return &Client{
		DB:  db,
		log: log.With("client", "SurrealDB"),
	}, nil
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.DB == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := c.DB.Close(ctx)
	c.DB = nil
	return err
}
