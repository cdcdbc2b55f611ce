package flash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/redis/go-redis/v9"
)

var _ ports.FlashStore = (*RedisStore)(nil)

// TTL del mensaje pendiente: si el cliente nunca lo recoge, expira solo.
const flashTTL = 60 * time.Second

// RedisStore guarda el mensaje flash pendiente de cada usuario en Redis,
// una clave por usuario. GETDEL hace la lectura destructiva atómica, así
// dos pestañas del panel no muestran el mismo mensaje dos veces.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore construye el store sobre un cliente ya configurado.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func flashKey(userID int64) string {
	return fmt.Sprintf("flash:%d", userID)
}

// Push serializa y guarda el mensaje, pisando cualquier anterior.
func (s *RedisStore) Push(ctx context.Context, userID int64, f dto.Flash) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("flash: serializar: %w", err)
	}
	if err := s.client.Set(ctx, flashKey(userID), raw, flashTTL).Err(); err != nil {
		return fmt.Errorf("flash: guardar: %w", err)
	}
	return nil
}

// Pop devuelve y elimina el mensaje pendiente; nil si no hay ninguno.
func (s *RedisStore) Pop(ctx context.Context, userID int64) (*dto.Flash, error) {
	raw, err := s.client.GetDel(ctx, flashKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("flash: leer: %w", err)
	}
	var f dto.Flash
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil, fmt.Errorf("flash: deserializar: %w", err)
	}
	return &f, nil
}
