package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the storefront schema.
// Like pgLib it opens gorm without TranslateError and relies on translateErrors.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db = translateErrors(db).Session(&gorm.Session{SkipDefaultTransaction: true})

	// Every pooled connection to ":memory:" would open a fresh database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Name:        name,
		Company:     "Acme",
		Description: "a sturdy product built to last for years",
		Price:       price,
		Image:       "https://cdn.example.com/uploads/" + name + ".png",
		CreatedBy:   "admin",
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

func createTestCart(t *testing.T, db *gorm.DB, userID string) *entity.Cart {
	t.Helper()

	cart := &entity.Cart{
		UserID:     userID,
		TaxRate:    decimal.RequireFromString("0.1"),
		Shipping:   decimal.NewFromInt(5),
		CartTotal:  decimal.Zero,
		Tax:        decimal.Zero,
		OrderTotal: decimal.Zero,
	}
	require.NoError(t, NewCartRepository(db).Create(context.Background(), cart))

	return cart
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "lamp", 25)
	assert.NotZero(t, product.ID)
	assert.NotEqual(t, uuid.Nil, product.UID)

	found, err := repo.FindByUID(ctx, product.UID)
	require.NoError(t, err)
	assert.Equal(t, "lamp", found.Name)
	assert.Equal(t, int64(25), found.Price)

	_, err = repo.FindByUID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	createTestProduct(t, db, "chair", 40)
	createTestProduct(t, db, "table", 90)
	lamp := createTestProduct(t, db, "lamp", 15)
	lamp.Featured = true
	require.NoError(t, repo.Update(ctx, lamp))

	t.Run("price ascending", func(t *testing.T) {
		products, err := repo.List(ctx, repository.ProductFilter{Sort: entity.ProductSortPriceAsc})
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, []string{"lamp", "chair", "table"}, productNames(products))
	})

	t.Run("name", func(t *testing.T) {
		products, err := repo.List(ctx, repository.ProductFilter{Sort: entity.ProductSortName})
		require.NoError(t, err)
		assert.Equal(t, []string{"chair", "lamp", "table"}, productNames(products))
	})

	t.Run("search is case insensitive over name and company", func(t *testing.T) {
		products, err := repo.List(ctx, repository.ProductFilter{Search: "TAB"})
		require.NoError(t, err)
		assert.Equal(t, []string{"table"}, productNames(products))

		products, err = repo.List(ctx, repository.ProductFilter{Search: "acme"})
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("featured only", func(t *testing.T) {
		products, err := repo.List(ctx, repository.ProductFilter{FeaturedOnly: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"lamp"}, productNames(products))
	})
}

func TestProductRepository_UpdateAndDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	err := repo.Update(ctx, &entity.Product{UID: uuid.New(), Name: "ghost"})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCartRepository_OneCartPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	cart := createTestCart(t, db, "user-1")

	found, err := repo.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.UID, found.UID)
	assert.Equal(t, "0.1", found.TaxRate.String())
	assert.Equal(t, "5", found.Shipping.String())

	err = repo.Create(ctx, &entity.Cart{UserID: "user-1", TaxRate: decimal.RequireFromString("0.1"), Shipping: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, repository.ErrDuplicateCart)

	_, err = repo.FindByUserID(ctx, "user-2")
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestCartRepository_UpsertItemMergesQuantity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "mug", 10)
	cart := createTestCart(t, db, "user-1")

	require.NoError(t, repo.UpsertItem(ctx, cart.ID, product.ID, 2))
	require.NoError(t, repo.UpsertItem(ctx, cart.ID, product.ID, 3))

	items, err := repo.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "mug", items[0].Product.Name)
}

func TestCartRepository_ItemsAreScopedToCart(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "mug", 10)
	mine := createTestCart(t, db, "user-1")
	theirs := createTestCart(t, db, "user-2")
	require.NoError(t, repo.UpsertItem(ctx, theirs.ID, product.ID, 1))

	theirItems, err := repo.ListItems(ctx, theirs.ID)
	require.NoError(t, err)
	require.Len(t, theirItems, 1)
	foreign := theirItems[0].UID

	assert.ErrorIs(t, repo.DeleteItem(ctx, mine.ID, foreign), repository.ErrCartItemNotFound)
	assert.ErrorIs(t, repo.UpdateItemQuantity(ctx, mine.ID, foreign, 9), repository.ErrCartItemNotFound)

	theirItems, err = repo.ListItems(ctx, theirs.ID)
	require.NoError(t, err)
	require.Len(t, theirItems, 1)
	assert.Equal(t, 1, theirItems[0].Quantity)
}

func TestCartRepository_UpdateTotalsAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "mug", 10)
	cart := createTestCart(t, db, "user-1")
	require.NoError(t, repo.UpsertItem(ctx, cart.ID, product.ID, 5))

	cart.NumItems = 5
	cart.CartTotal = decimal.NewFromInt(50)
	cart.Tax = decimal.NewFromInt(5)
	cart.OrderTotal = decimal.NewFromInt(60)
	require.NoError(t, repo.UpdateTotals(ctx, cart))

	found, err := repo.FindByUID(ctx, cart.UID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.NumItems)
	assert.True(t, found.OrderTotal.Equal(decimal.NewFromInt(60)))

	require.NoError(t, repo.Delete(ctx, cart.ID))
	_, err = repo.FindByUID(ctx, cart.UID)
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	items, err := repo.ListItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, repo.Delete(ctx, cart.ID), repository.ErrCartNotFound)
}

func TestOrderRepository_MarkPaidIsRepeatable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &entity.Order{
		UserID:     "user-1",
		Email:      "user@example.com",
		Products:   3,
		OrderTotal: decimal.RequireFromString("38.00"),
		Tax:        decimal.NewFromInt(3),
		Shipping:   decimal.NewFromInt(5),
	}
	require.NoError(t, repo.Create(ctx, order))

	orders, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, orders)

	require.NoError(t, repo.MarkPaid(ctx, order.UID))
	require.NoError(t, repo.MarkPaid(ctx, order.UID))

	found, err := repo.FindByUID(ctx, order.UID)
	require.NoError(t, err)
	assert.True(t, found.IsPaid)

	orders, err = repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	all, err := repo.ListPaid(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.ErrorIs(t, repo.MarkPaid(ctx, uuid.New()), repository.ErrOrderNotFound)
}

func TestCheckoutSessionRepository_ListPendingBefore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCheckoutSessionRepository(db)
	ctx := context.Background()

	old := &entity.CheckoutSession{
		ProviderSessionID: "cs_old",
		OrderUID:          uuid.New(),
		CartUID:           uuid.New(),
		UserID:            "user-1",
		CreatedAt:         time.Now().Add(-2 * time.Hour),
	}
	fresh := &entity.CheckoutSession{
		ProviderSessionID: "cs_fresh",
		OrderUID:          uuid.New(),
		CartUID:           uuid.New(),
		UserID:            "user-1",
	}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, fresh))
	assert.ErrorIs(t, repo.Create(ctx, &entity.CheckoutSession{ProviderSessionID: "cs_old", OrderUID: uuid.New(), CartUID: uuid.New(), UserID: "x"}),
		repository.ErrDuplicateCheckoutSession)

	pending, err := repo.ListPendingBefore(ctx, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "cs_old", pending[0].ProviderSessionID)
	assert.Equal(t, entity.CheckoutStatusPending, pending[0].Status)

	require.NoError(t, repo.UpdateStatus(ctx, "cs_old", entity.CheckoutStatusAbandoned))
	pending, err = repo.ListPendingBefore(ctx, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "cs_missing", entity.CheckoutStatusPaid), repository.ErrCheckoutSessionNotFound)
}

func TestCheckoutSessionRepository_RequeueRotatesPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCheckoutSessionRepository(db)
	ctx := context.Background()

	for _, id := range []string{"cs_first", "cs_second", "cs_broken"} {
		require.NoError(t, repo.Create(ctx, &entity.CheckoutSession{
			ProviderSessionID: id,
			OrderUID:          uuid.New(),
			CartUID:           uuid.New(),
			UserID:            "user-1",
			CreatedAt:         time.Now().Add(-2 * time.Hour),
		}))
	}
	require.NoError(t, repo.UpdateStatus(ctx, "cs_broken", entity.CheckoutStatusFailed))

	require.NoError(t, repo.Requeue(ctx, "cs_first"))
	require.NoError(t, repo.Requeue(ctx, "cs_broken"))
	require.NoError(t, repo.Requeue(ctx, "cs_missing"))

	pending, err := repo.ListPendingBefore(ctx, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "cs_second", pending[0].ProviderSessionID)
	assert.Equal(t, "cs_first", pending[1].ProviderSessionID)

	broken, err := repo.FindByProviderID(ctx, "cs_broken")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStatusFailed, broken.Status)
}

func TestReviewRepository_UniquePerUserAndProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "mug", 10)
	review := &entity.Review{
		UserID:         "user-1",
		ProductID:      product.ID,
		AuthorName:     "Ada",
		AuthorImageURL: "https://img.example.com/ada.png",
		Rating:         5,
		Comment:        "excellent mug, keeps coffee warm",
	}
	require.NoError(t, repo.Create(ctx, review))

	dup := *review
	dup.ID, dup.UID = 0, uuid.Nil
	assert.ErrorIs(t, repo.Create(ctx, &dup), repository.ErrDuplicateReview)
}

func TestReviewRepository_AggregateRating(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "mug", 10)

	agg, err := repo.AggregateRating(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, repository.RatingAggregate{}, agg)

	for i, rating := range []int{5, 3, 4} {
		require.NoError(t, repo.Create(ctx, &entity.Review{
			UserID:         "user-" + string(rune('a'+i)),
			ProductID:      product.ID,
			AuthorName:     "reviewer",
			AuthorImageURL: "https://img.example.com/r.png",
			Rating:         rating,
			Comment:        "an honest opinion of the mug",
		}))
	}

	agg, err = repo.AggregateRating(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, repository.RatingAggregate{Sum: 12, Count: 3}, agg)

	reviews, err := repo.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.NotNil(t, reviews[0].Product)
	assert.Equal(t, "mug", reviews[0].Product.Name)

	assert.ErrorIs(t, repo.Delete(ctx, "user-b", reviews[0].UID), repository.ErrReviewNotFound)
	require.NoError(t, repo.Delete(ctx, "user-a", reviews[0].UID))
}

func TestFavoriteRepository_ToggleLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	product := createTestProduct(t, db, "mug", 10)
	favorite := &entity.Favorite{UserID: "user-1", ProductID: product.ID}
	require.NoError(t, repo.Create(ctx, favorite))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Favorite{UserID: "user-1", ProductID: product.ID}), repository.ErrDuplicateFavorite)

	found, err := repo.FindByUserAndProduct(ctx, "user-1", product.ID)
	require.NoError(t, err)
	assert.Equal(t, favorite.UID, found.UID)

	favorites, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "mug", favorites[0].Product.Name)

	require.NoError(t, repo.Delete(ctx, "user-1", favorite.UID))
	_, err = repo.FindByUserAndProduct(ctx, "user-1", product.ID)
	assert.ErrorIs(t, err, repository.ErrFavoriteNotFound)
}

func TestTranslateErrors_DuplicateFavoriteAndReview(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	product := createTestProduct(t, db, "kettle", 40)

	favorites := NewFavoriteRepository(db)
	require.NoError(t, favorites.Create(ctx, &entity.Favorite{UserID: "user-1", ProductID: product.ID}))
	err := favorites.Create(ctx, &entity.Favorite{UserID: "user-1", ProductID: product.ID})
	assert.ErrorIs(t, err, repository.ErrDuplicateFavorite)

	reviews := NewReviewRepository(db)
	review := func() *entity.Review {
		return &entity.Review{
			UserID:         "user-1",
			ProductID:      product.ID,
			AuthorName:     "Ada",
			AuthorImageURL: "https://img.example.com/ada.png",
			Rating:         4,
			Comment:        "boils water quickly and quietly",
		}
	}
	require.NoError(t, reviews.Create(ctx, review()))
	assert.ErrorIs(t, reviews.Create(ctx, review()), repository.ErrDuplicateReview)
}

func TestConstraintViolations_PostgresSQLState(t *testing.T) {
	wrap := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert")
	}

	assert.True(t, isUniqueConstraintViolation(wrap("23505")))
	assert.True(t, isForeignKeyConstraintViolation(wrap("23503")))
	assert.True(t, isNotNullConstraintViolation(wrap("23502")))
	assert.True(t, isCheckConstraintViolation(wrap("23514")))

	assert.False(t, isUniqueConstraintViolation(wrap("23503")))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("foreign key mentioned in a message")))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	product := createTestProduct(t, db, "mug", 10)

	sentinel := errors.New("abort")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cart := &entity.Cart{UserID: "user-1", TaxRate: decimal.RequireFromString("0.1"), Shipping: decimal.NewFromInt(5)}
		if err := factory.NewCartRepository().Create(ctx, cart); err != nil {
			return err
		}
		if err := factory.NewCartRepository().UpsertItem(ctx, cart.ID, product.ID, 1); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	_, err = NewCartRepository(db).FindByUserID(ctx, "user-1")
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func productNames(products []*entity.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	return names
}
