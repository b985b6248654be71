package cache

import (
	"alcyxob/training-diary/internal/domain"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// freecache rejects smaller caches
const minCacheSize = 512 * 1024

// TrainingCache keeps recently read trainings keyed by id, bson encoded.
type TrainingCache struct {
	cache     *freecache.Cache
	expireSec int
}

func NewTrainingCache(sizeBytes int, ttl time.Duration) *TrainingCache {
	if sizeBytes < minCacheSize {
		sizeBytes = minCacheSize
	}
	expire := int(ttl / time.Second)
	if expire <= 0 {
		expire = 60
	}
	return &TrainingCache{
		cache:     freecache.NewCache(sizeBytes),
		expireSec: expire,
	}
}

// Get returns the cached training, or false when it is absent, expired or
// cannot be decoded.
func (c *TrainingCache) Get(id primitive.ObjectID) (*domain.Training, bool) {
	raw, err := c.cache.Get(id[:])
	if err != nil {
		return nil, false
	}

	var training domain.Training
	if err := bson.Unmarshal(raw, &training); err != nil {
		log.Errorf("unmarshal cached training %s: %s", id.Hex(), err)
		c.cache.Del(id[:])
		return nil, false
	}
	return &training, true
}

func (c *TrainingCache) Set(training *domain.Training) {
	raw, err := bson.Marshal(training)
	if err != nil {
		log.Errorf("marshal training %s for cache: %s", training.ID.Hex(), err)
		return
	}
	if err := c.cache.Set(training.ID[:], raw, c.expireSec); err != nil {
		log.Debugf("training %s not cached: %s", training.ID.Hex(), err)
	}
}

func (c *TrainingCache) Invalidate(id primitive.ObjectID) {
	c.cache.Del(id[:])
}
