package config

import (
	"context"
	"crypto/tls"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the optional Redis client.  Redis only backs the
// public-catalog response cache and the booking rate limiter; the booking
// core never touches it, so a failed ping returns nil and callers disable
// those features instead of refusing to start.
//
// REDIS_URL (redis:// or rediss:// form) wins when set.  Otherwise the
// address is assembled from REDIS_HOST/REDIS_PORT or REDIS_ADDR, with
// REDIS_PASSWORD, REDIS_DB and REDIS_TLS applied on top.
func NewRedisClient() *redis.Client {
	var opts *redis.Options
	if u := os.Getenv("REDIS_URL"); u != "" {
		parsed, err := redis.ParseURL(u)
		if err != nil {
			log.Printf("redis: bad REDIS_URL: %v", err)
			return nil
		}
		opts = parsed
	} else {
		addr := os.Getenv("REDIS_ADDR")
		if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
			addr = host + ":" + port
		}
		if addr == "" {
			addr = "localhost:6379"
		}
		dbNum := 0
		if n, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
			dbNum = n
		}
		opts = &redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       dbNum,
		}
		if v := os.Getenv("REDIS_TLS"); v == "1" || strings.EqualFold(v, "true") {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
