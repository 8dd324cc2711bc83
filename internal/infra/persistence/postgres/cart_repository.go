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
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUserID retrieves the user's cart without its items.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

// FindByUID retrieves a cart by its public identifier without its items.
func (repo *cartRepository) FindByUID(ctx context.Context, uid uuid.UUID) (*entity.Cart, error) {
	return repo.findOne(ctx, "uid = ?", uid)
}

func (repo *cartRepository) findOne(ctx context.Context, where string, arg any) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where(where, arg).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// Create persists a new cart. The unique index on user_id keeps one cart per user.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	if cart.UID == uuid.Nil {
		cart.UID = uuid.New()
	}
	cartM := fromCartDomain(cart)

	// DO NOTHING keeps a surrounding Postgres transaction usable when another request won the race.
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(cartM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCart
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateCart
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// UpdateTotals writes the cart's derived fields.
func (repo *cartRepository) UpdateTotals(ctx context.Context, cart *entity.Cart) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cart.ID).
		Updates(map[string]any{
			"num_items":   cart.NumItems,
			"cart_total":  cart.CartTotal,
			"tax":         cart.Tax,
			"order_total": cart.OrderTotal,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart totals")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// Delete removes a cart and all of its items.
func (repo *cartRepository) Delete(ctx context.Context, cartID uint64) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart items")
	}

	result := db.Where("id = ?", cartID).Delete(&model.CartModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// ListItems returns the cart's items with their products, in insertion order.
func (repo *cartRepository) ListItems(ctx context.Context, cartID uint64) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at ASC, id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// UpsertItem inserts a line or atomically adds quantity to the existing (cart, product) line.
func (repo *cartRepository) UpsertItem(ctx context.Context, cartID, productID uint64, quantity int) error {
	itemM := &model.CartItemModel{
		UID:       uuid.New(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": time.Now(),
			}),
		}).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return nil
}

// UpdateItemQuantity overwrites the quantity of a line item in the given cart.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, cartID uint64, itemUID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("uid = ? AND cart_id = ?", itemUID, cartID).
		Update("quantity", quantity)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes a line item from the given cart.
func (repo *cartRepository) DeleteItem(ctx context.Context, cartID uint64, itemUID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("uid = ? AND cart_id = ?", itemUID, cartID).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		ID:         data.ID,
		UID:        data.UID,
		UserID:     data.UserID,
		TaxRate:    data.TaxRate,
		Shipping:   data.Shipping,
		NumItems:   data.NumItems,
		CartTotal:  data.CartTotal,
		Tax:        data.Tax,
		OrderTotal: data.OrderTotal,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		ID:         data.ID,
		UID:        data.UID,
		UserID:     data.UserID,
		TaxRate:    data.TaxRate,
		Shipping:   data.Shipping,
		NumItems:   data.NumItems,
		CartTotal:  data.CartTotal,
		Tax:        data.Tax,
		OrderTotal: data.OrderTotal,
	}
}

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UID:       data.UID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Product:   toProductDomain(data.Product),
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
