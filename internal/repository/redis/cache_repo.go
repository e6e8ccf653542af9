package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/watch-store/internal/cfg"
	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/internal/repository/redis/converter"
	"github.com/DRSN-tech/watch-store/pkg/clients"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	productsKey           = "catalog:products"
	accessoriesKey        = "catalog:accessories"
	productsVersionKey    = "catalog:products:version"
	accessoriesVersionKey = "catalog:accessories:version"
)

// CacheRepo хранит полные списки каталога в Redis одним ключом на список.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CatalogConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProducts возвращает закэшированный список товаров или e.ErrCacheMiss.
func (c *CacheRepo) GetProducts(ctx context.Context) ([]domain.Product, error) {
	var models []converter.ProductRedisModel
	if err := c.get(ctx, productsKey, &models); err != nil {
		return nil, err
	}

	return c.conv.ProductsToDomain(models), nil
}

func (c *CacheRepo) ProductsVersion(ctx context.Context) (int64, error) {
	return c.version(ctx, productsVersionKey)
}

// SetProducts кэширует список, если версия не менялась после ProductsVersion.
func (c *CacheRepo) SetProducts(ctx context.Context, version int64, products []domain.Product) error {
	return c.set(ctx, productsKey, productsVersionKey, version, c.conv.ProductsToRedis(products))
}

func (c *CacheRepo) DeleteProducts(ctx context.Context) error {
	return c.del(ctx, productsKey, productsVersionKey)
}

// GetAccessories возвращает закэшированный список аксессуаров или e.ErrCacheMiss.
func (c *CacheRepo) GetAccessories(ctx context.Context) ([]domain.Accessory, error) {
	var models []converter.AccessoryRedisModel
	if err := c.get(ctx, accessoriesKey, &models); err != nil {
		return nil, err
	}

	return c.conv.AccessoriesToDomain(models), nil
}

func (c *CacheRepo) AccessoriesVersion(ctx context.Context) (int64, error) {
	return c.version(ctx, accessoriesVersionKey)
}

func (c *CacheRepo) SetAccessories(ctx context.Context, version int64, accessories []domain.Accessory) error {
	return c.set(ctx, accessoriesKey, accessoriesVersionKey, version, c.conv.AccessoriesToRedis(accessories))
}

func (c *CacheRepo) DeleteAccessories(ctx context.Context) error {
	return c.del(ctx, accessoriesKey, accessoriesVersionKey)
}

// get читает и разбирает JSON. Повреждённое значение удаляется и считается промахом.
func (c *CacheRepo) get(ctx context.Context, key string, dst any) error {
	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return e.ErrCacheMiss
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warnf("Redis unmarshal failed for key %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(ctx, key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return e.ErrCacheMiss
	}

	return nil
}

// version: отсутствующий ключ версии считается нулевой версией.
func (c *CacheRepo) version(ctx context.Context, versionKey string) (int64, error) {
	v, err := c.client.Client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, r.Nil) {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return v, nil
}

// set пишет значение под WATCH ключа версии. Если версия изменилась до EXEC,
// возвращается e.ErrCacheStale и значение не записывается.
func (c *CacheRepo) set(ctx context.Context, key, versionKey string, version int64, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	err = c.client.Client.Watch(ctx, func(tx *r.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, r.Nil) {
			return err
		}
		if current != version {
			return e.ErrCacheStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe r.Pipeliner) error {
			pipe.Set(ctx, key, data, c.cfg.ListTTL)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, e.ErrCacheStale), errors.Is(err, r.TxFailedErr):
		return e.ErrCacheStale
	default:
		return e.Wrap(whereami.WhereAmI(), err)
	}
}

// del удаляет список и увеличивает его версию в одной транзакции.
func (c *CacheRepo) del(ctx context.Context, key, versionKey string) error {
	_, err := c.client.Client.TxPipelined(ctx, func(pipe r.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
