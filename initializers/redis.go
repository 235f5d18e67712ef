package initializers

import (
	"context"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/config"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/lib/schedule"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var RedisClient *redis.Client

func InitRedis(ctx context.Context) {
	if config.Conf.Redis.Address == "" {
		log.Warn("redis address is not set, schedule status is read from the database")
		schedule.NewHandler(nil)
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Address,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		// reads fall back to the database until redis comes back
		log.WithError(err).Error("redis ping failed")
	}
	schedule.NewHandler(RedisClient)
}
