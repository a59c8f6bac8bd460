package database

import (
	"log"

	"tiket_manager/config"

	"github.com/redis/go-redis/v9"
)

// Redis bernilai nil kalau REDIS_ADDR tidak diset; cache jadi no-op
var Redis *redis.Client

func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, ticket list cache disabled")
		return
	}
	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
	log.Println("Redis client initialized:", addr)
}
