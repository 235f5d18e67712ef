// Package schedule answers whether a candidate finished availability setup.
// The availability service publishes the flag to redis; the candidate row
// keeps the last known value for when redis is not available.
package schedule

import (
	"context"
	"strconv"

	"github.com/Aaron071982/riseandshineHRM-final-sub000/db"
	candidatestore "github.com/Aaron071982/riseandshineHRM-final-sub000/lib/candidate/store"
	"github.com/Aaron071982/riseandshineHRM-final-sub000/models"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "schedule:completed:"

type Provider interface {
	ScheduleCompleted(ctx context.Context, candidateID string) (bool, error)
}

var Instance Provider

func NewHandler(client *redis.Client) {
	Instance = NewInstance(client, candidatestore.NewInstance(db.DB))
}

// NewInstance builds the provider; client may be nil to read the database only.
func NewInstance(client *redis.Client, candidateStore candidatestore.Provider) Provider {
	return impl{
		client:         client,
		candidateStore: candidateStore,
	}
}

type impl struct {
	client         *redis.Client
	candidateStore candidatestore.Provider
}

func Key(candidateID string) string {
	return keyPrefix + candidateID
}

func (i impl) ScheduleCompleted(ctx context.Context, candidateID string) (bool, error) {
	if i.client != nil {
		value, err := i.client.Get(ctx, Key(candidateID)).Result()
		switch {
		case err == nil:
			completed, parseErr := strconv.ParseBool(value)
			if parseErr == nil {
				return completed, nil
			}
			log.WithField("candidate_id", candidateID).
				WithField("value", value).
				Warn("unexpected schedule flag value in redis, falling back to database")
		case errors.Is(err, redis.Nil):
		default:
			log.WithError(err).
				WithField("candidate_id", candidateID).
				Warn("failed to read schedule flag from redis, falling back to database")
		}
	}

	rec, err := i.candidateStore.GetByID(ctx, candidateID)
	if err != nil {
		return false, models.NewPersistenceError(err, "failed to load candidate")
	}
	if rec == nil {
		return false, models.NewNotFoundError("candidate not found")
	}
	return rec.ScheduleCompleted, nil
}
