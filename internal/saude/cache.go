package saude

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ttl curto: a saúde muda a cada feedback novo, o cache só amortece rajadas
// de consultas de dashboard
const cacheTTL = 60 * time.Second

// Cache guarda retratos de saúde em Redis. É opcional: sem REDIS_HOST o
// servidor calcula sempre direto do banco.
type Cache struct {
	client *redis.Client
}

// NewCache retorna nil quando host é vazio.
func NewCache(host, password string, db int) *Cache {
	if host == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     host,
		Password: password,
		DB:       db,
	})
	return &Cache{client: client}
}

func chave(empreendimentoID uint) string {
	return fmt.Sprintf("saude:empreendimento:%d", empreendimentoID)
}

func (c *Cache) Buscar(ctx context.Context, empreendimentoID uint) (*Saude, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, chave(empreendimentoID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Erro ao consultar cache de saúde: %v", err)
		}
		return nil, false
	}

	var s Saude
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, false
	}
	return &s, true
}

func (c *Cache) Guardar(ctx context.Context, s *Saude) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, chave(s.EmpreendimentoID), raw, cacheTTL).Err(); err != nil {
		log.Printf("Erro ao gravar cache de saúde: %v", err)
	}
}
