package policycache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/attendance-tracker/internal/config"
	"github.com/BruksfildServices01/attendance-tracker/internal/domain/policy"
)

// Cache de políticas resolvidas. A chave inclui o fingerprint das três
// linhas de Settings; uma escrita muda o fingerprint e torna a entrada
// antiga inalcançável, então o TTL só limpa lixo.

const ttl = 10 * time.Minute

type Cache struct {
	rdb *redis.Client
}

// New conecta no Redis e valida com Ping. Addr vazio desliga o cache
// (retorna nil); um *Cache nil é seguro de usar e sempre dá miss.
func New(cfg *config.Config) (*Cache, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Cache{rdb: rdb}, nil
}

func key(eventID uint, fingerprint string) string {
	return "policy:event:" + strconv.FormatUint(uint64(eventID), 10) + ":" + fingerprint
}

func (c *Cache) Get(ctx context.Context, eventID uint, fingerprint string) (*policy.Effective, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(eventID, fingerprint)).Bytes()
	if err != nil {
		return nil, false
	}

	var eff policy.Effective
	if err := json.Unmarshal(raw, &eff); err != nil {
		return nil, false
	}
	return &eff, true
}

func (c *Cache) Set(ctx context.Context, eventID uint, fingerprint string, eff policy.Effective) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(eff)
	if err != nil {
		return
	}

	// best effort: falha de cache nunca quebra a resolução
	c.rdb.Set(ctx, key(eventID, fingerprint), raw, ttl)
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
