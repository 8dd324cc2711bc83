// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByUID retrieves a product by its public identifier.
func (repo *productRepository) FindByUID(ctx context.Context, uid uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by uid")
	}

	return toProductDomain(&productM), nil
}

// List returns products matching the filter in the requested order.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(company) LIKE ?", pattern, pattern)
	}

	if err := query.Order(productOrder(filter.Sort)).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product and fills its generated fields.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.UID == uuid.Nil {
		product.UID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product identifier already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update overwrites the editable fields of an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("uid = ?", product.UID).
		Updates(map[string]any{
			"name":        product.Name,
			"company":     product.Company,
			"description": product.Description,
			"price":       product.Price,
			"image":       product.Image,
			"featured":    product.Featured,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its public identifier.
func (repo *productRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("product is still referenced")
		}

		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func productOrder(sort entity.ProductSort) string {
	switch sort {
	case entity.ProductSortPriceAsc:
		return "price ASC, id ASC"
	case entity.ProductSortPriceDesc:
		return "price DESC, id DESC"
	case entity.ProductSortName:
		return "name ASC, id ASC"
	default:
		return "created_at DESC, id DESC"
	}
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		UID:         data.UID,
		Name:        data.Name,
		Company:     data.Company,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Featured:    data.Featured,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		UID:         data.UID,
		Name:        data.Name,
		Company:     data.Company,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Featured:    data.Featured,
		CreatedBy:   data.CreatedBy,
	}
}
