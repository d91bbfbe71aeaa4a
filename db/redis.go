// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	gateway_errors "github.com/orgdesk/orgdesk/errors"
	logger "github.com/orgdesk/orgdesk/logging"
	"github.com/orgdesk/orgdesk/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// Sessions carry identity and department context, so they are encrypted
// at rest in Redis.

func SaveSession(ctx context.Context, session *model.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	encryptedSession, err := encrypt(sessionJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt session: %w", err)
	}

	key := fmt.Sprintf("session:%s", session.Token)
	ttl := viper.GetDuration("redis.sessionTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encryptedSession), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	logger.Debug("Session stored", zap.String("userId", session.UserID))
	return nil
}

func GetSession(ctx context.Context, token string) (*model.Session, error) {
	key := fmt.Sprintf("session:%s", token)
	encryptedSessionStr, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, gateway_errors.ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	encryptedSession, err := base64.StdEncoding.DecodeString(encryptedSessionStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	sessionJSON, err := decrypt(encryptedSession)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt session: %w", err)
	}

	var session model.Session
	if err = json.Unmarshal(sessionJSON, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	session.Token = token

	return &session, nil
}

func DeleteSession(ctx context.Context, token string) error {
	key := fmt.Sprintf("session:%s", token)
	if err := RedisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	logger.Debug("Session deleted")
	return nil
}

// Department feature lists change rarely; they are cached unencrypted
// with the default TTL so a panel customization shows up within minutes
// without a re-login.

func CacheDepartment(ctx context.Context, department *model.Department) error {
	departmentJSON, err := json.Marshal(department)
	if err != nil {
		return fmt.Errorf("failed to marshal department: %w", err)
	}

	key := fmt.Sprintf("department:%s", department.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, departmentJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache department: %w", err)
	}

	logger.Debug("Department cached", zap.String("departmentID", department.ID))
	return nil
}

func GetCachedDepartment(ctx context.Context, departmentID string) (*model.Department, error) {
	key := fmt.Sprintf("department:%s", departmentID)
	departmentJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get department from cache: %w", err)
	}

	var department model.Department
	if err = json.Unmarshal([]byte(departmentJSON), &department); err != nil {
		return nil, fmt.Errorf("failed to unmarshal department: %w", err)
	}

	return &department, nil
}

func DeleteCachedDepartment(ctx context.Context, departmentID string) error {
	key := fmt.Sprintf("department:%s", departmentID)
	if err := RedisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete department from cache: %w", err)
	}
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
