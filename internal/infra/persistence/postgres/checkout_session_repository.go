package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// checkoutSessionRepository implements the repository.CheckoutSessionRepository interface.
type checkoutSessionRepository struct {
	db *gorm.DB
}

// NewCheckoutSessionRepository is the constructor for checkoutSessionRepository.
func NewCheckoutSessionRepository(db *gorm.DB) repository.CheckoutSessionRepository {
	return &checkoutSessionRepository{
		db: db,
	}
}

// Create records a new session.
func (repo *checkoutSessionRepository) Create(ctx context.Context, session *entity.CheckoutSession) error {
	if session.UID == uuid.Nil {
		session.UID = uuid.New()
	}
	if session.Status == "" {
		session.Status = entity.CheckoutStatusPending
	}
	sessionM := fromCheckoutSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCheckoutSession
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create checkout session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindByProviderID retrieves a session by the payment provider's identifier.
func (repo *checkoutSessionRepository) FindByProviderID(ctx context.Context, providerSessionID string) (*entity.CheckoutSession, error) {
	var sessionM model.CheckoutSessionModel

	if err := repo.db.WithContext(ctx).
		Where("provider_session_id = ?", providerSessionID).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckoutSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkout session")
	}

	return toCheckoutSessionDomain(&sessionM), nil
}

// UpdateStatus moves a session to a new status.
func (repo *checkoutSessionRepository) UpdateStatus(ctx context.Context, providerSessionID string, status entity.CheckoutStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CheckoutSessionModel{}).
		Where("provider_session_id = ?", providerSessionID).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update checkout session status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCheckoutSessionNotFound
	}

	return nil
}

// Requeue bumps updated_at of a still-pending session so the next reconciliation pass reaches it last.
func (repo *checkoutSessionRepository) Requeue(ctx context.Context, providerSessionID string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CheckoutSessionModel{}).
		Where("provider_session_id = ? AND status = ?", providerSessionID, string(entity.CheckoutStatusPending)).
		Update("updated_at", repo.db.NowFunc()).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to requeue checkout session")
	}

	return nil
}

// ListPendingBefore returns pending sessions created before the cutoff, least recently updated first.
func (repo *checkoutSessionRepository) ListPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entity.CheckoutSession, error) {
	var sessionModels []*model.CheckoutSessionModel

	query := repo.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entity.CheckoutStatusPending), cutoff).
		Order("updated_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pending checkout sessions")
	}

	sessions := make([]*entity.CheckoutSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toCheckoutSessionDomain(sessionM))
	}

	return sessions, nil
}

// --- Mapper Functions ---

func toCheckoutSessionDomain(data *model.CheckoutSessionModel) *entity.CheckoutSession {
	if data == nil {
		return nil
	}

	return &entity.CheckoutSession{
		ID:                data.ID,
		UID:               data.UID,
		ProviderSessionID: data.ProviderSessionID,
		OrderUID:          data.OrderUID,
		CartUID:           data.CartUID,
		UserID:            data.UserID,
		Status:            entity.CheckoutStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromCheckoutSessionDomain(data *entity.CheckoutSession) *model.CheckoutSessionModel {
	if data == nil {
		return nil
	}

	return &model.CheckoutSessionModel{
		ID:                data.ID,
		UID:               data.UID,
		ProviderSessionID: data.ProviderSessionID,
		OrderUID:          data.OrderUID,
		CartUID:           data.CartUID,
		UserID:            data.UserID,
		Status:            string(data.Status),
		CreatedAt:         data.CreatedAt,
	}
}
