package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/seatbooking/config"
	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps finished run reports for a limited time so they can be
// fetched by ID after the run returns.
type RedisCache struct {
	client    *redis.Client
	reportTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, reportTTL time.Duration) *RedisCache {
	return NewRedisCacheFromClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		reportTTL,
	)
}

func NewRedisCacheFromClient(client *redis.Client, reportTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, reportTTL: reportTTL}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) SetReport(ctx context.Context, report *domain.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey(report.ID), payload, c.reportTTL).Err()
}

func (c *RedisCache) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	data, err := c.client.Get(ctx, reportKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func reportKey(id string) string {
	return fmt.Sprintf("cache:report:%s", id)
}
