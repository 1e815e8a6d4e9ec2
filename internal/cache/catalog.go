package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/petshopsuite/petshop-api/internal/models"
)

const catalogTTL = 5 * time.Minute

// CatalogCache guarda o catálogo público de serviços por pet shop.
// A página de agendamento bate aqui a cada visita; o banco só é
// consultado quando a chave expira ou depois de uma escrita no catálogo.
type CatalogCache struct {
	rdb *redis.Client
}

func NewCatalogCache(addr string) *CatalogCache {
	return &CatalogCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func catalogKey(petShopID uint) string {
	return fmt.Sprintf("catalog:%d", petShopID)
}

func (c *CatalogCache) Get(ctx context.Context, petShopID uint) ([]models.GroomService, bool) {
	raw, err := c.rdb.Get(ctx, catalogKey(petShopID)).Result()
	if err != nil {
		// redis.Nil ou indisponível: segue para o banco
		return nil, false
	}

	var services []models.GroomService
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, false
	}

	return services, true
}

func (c *CatalogCache) Set(ctx context.Context, petShopID uint, services []models.GroomService) {
	b, err := json.Marshal(services)
	if err != nil {
		return
	}

	// cache é melhor esforço; erro aqui não interrompe a requisição
	c.rdb.Set(ctx, catalogKey(petShopID), b, catalogTTL)
}

func (c *CatalogCache) Invalidate(ctx context.Context, petShopID uint) {
	c.rdb.Del(ctx, catalogKey(petShopID))
}
