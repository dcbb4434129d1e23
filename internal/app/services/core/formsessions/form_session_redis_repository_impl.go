package formsessions

import (
	"context"
	"sync"
	"time"

	"medscreen-service/internal/app/config"
	"medscreen-service/internal/app/contracts"
	"medscreen-service/internal/app/models"
	"medscreen-service/internal/pkg/constvars"
	"medscreen-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type formSessionRedisRepository struct {
	RedisRepository contracts.RedisRepository
	SessionTTL      time.Duration
	Log             *zap.Logger
}

var (
	formSessionRepositoryInstance contracts.FormSessionRepository
	onceFormSessionRepository     sync.Once
)

func NewFormSessionRedisRepository(
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.FormSessionRepository {
	onceFormSessionRepository.Do(func() {
		instance := &formSessionRedisRepository{
			RedisRepository: redisRepository,
			SessionTTL:      time.Duration(internalConfig.App.SessionExpiredTimeInMinutes) * time.Minute,
			Log:             logger,
		}
		formSessionRepositoryInstance = instance
	})
	return formSessionRepositoryInstance
}

// Save stores the whole session as JSON and refreshes its expiry, so a
// session's lifetime extends with activity.
func (r *formSessionRedisRepository) Save(ctx context.Context, session *models.FormSession) error {
	return r.RedisRepository.Set(ctx, constvars.FormSessionKeyPrefix+session.ID, session, r.SessionTTL)
}

func (r *formSessionRedisRepository) Find(ctx context.Context, sessionID string) (*models.FormSession, error) {
	data, err := r.RedisRepository.Get(ctx, constvars.FormSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.FormSession)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		r.Log.Error("formSessionRedisRepository.Find error unmarshaling session",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSessionDecode(err)
	}
	return session, nil
}

func (r *formSessionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.RedisRepository.Delete(ctx, constvars.FormSessionKeyPrefix+sessionID)
}
