package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new unpaid order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.UID == uuid.Nil {
		order.UID = uuid.New()
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByUID retrieves an order by its public identifier.
func (repo *orderRepository) FindByUID(ctx context.Context, uid uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by uid")
	}

	return toOrderDomain(&orderM), nil
}

// MarkPaid sets is_paid on the order. Marking a paid order again is a no-op.
func (repo *orderRepository) MarkPaid(ctx context.Context, uid uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("uid = ?", uid).
		Update("is_paid", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark order paid")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ListByUser returns the user's paid orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("user_id = ? AND is_paid = ?", userID, true))
}

// ListPaid returns every paid order, newest first.
func (repo *orderRepository) ListPaid(ctx context.Context) ([]*entity.Order, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("is_paid = ?", true))
}

func (repo *orderRepository) list(_ context.Context, query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := query.
		Order("created_at DESC, id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:         data.ID,
		UID:        data.UID,
		UserID:     data.UserID,
		Email:      data.Email,
		Products:   data.Products,
		OrderTotal: data.OrderTotal,
		Tax:        data.Tax,
		Shipping:   data.Shipping,
		IsPaid:     data.IsPaid,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:         data.ID,
		UID:        data.UID,
		UserID:     data.UserID,
		Email:      data.Email,
		Products:   data.Products,
		OrderTotal: data.OrderTotal,
		Tax:        data.Tax,
		Shipping:   data.Shipping,
		IsPaid:     data.IsPaid,
	}
}
