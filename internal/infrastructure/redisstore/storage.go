// Package redisstore adapta go-redis al contrato fiber.Storage para que el
// middleware de sesiones pueda compartir sesiones entre réplicas. Sin Redis
// configurado, el middleware usa su storage en memoria y este paquete no entra.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage implementa fiber.Storage sobre un cliente Redis.
type Storage struct {
	client *redis.Client
}

// Config conexión a Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// New conecta y verifica con PING; falla rápido si Redis no responde.
func New(ctx context.Context, cfg Config) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Storage{client: client}, nil
}

// Get devuelve (nil, nil) si la clave no existe, como exige fiber.Storage.
func (s *Storage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

// Set guarda con expiración; exp cero = sin expiración.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), key, val, exp).Err()
}

// Delete elimina la clave (no es error si no existe).
func (s *Storage) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

// Reset vacía la base de sesiones.
func (s *Storage) Reset() error {
	return s.client.FlushDB(context.Background()).Err()
}

// Close cierra la conexión.
func (s *Storage) Close() error {
	return s.client.Close()
}
