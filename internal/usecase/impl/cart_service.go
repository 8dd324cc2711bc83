package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	pageCache service.PageCache
	validator *validation.Validator
	taxRate   decimal.Decimal
	shipping  decimal.Decimal
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	PageCache service.PageCache
	Validator *validation.Validator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) (usecase.CartUsecase, error) {
	taxRate, shipping, err := cartPricing(params.Config)
	if err != nil {
		return nil, err
	}

	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		pageCache: params.PageCache,
		validator: params.Validator,
		taxRate:   taxRate,
		shipping:  shipping,
		logger:    params.Logger,
	}, nil
}

func cartPricing(cfg *config.Config) (decimal.Decimal, decimal.Decimal, error) {
	if cfg == nil || cfg.Cart == nil {
		return decimal.Zero, decimal.Zero, errors.New("cart pricing is not configured")
	}

	taxRate, err := decimal.NewFromString(cfg.Cart.TaxRate)
	if err != nil {
		return decimal.Zero, decimal.Zero, errors.Wrapf(err, "invalid cart tax rate %q", cfg.Cart.TaxRate)
	}
	shipping, err := decimal.NewFromString(cfg.Cart.Shipping)
	if err != nil {
		return decimal.Zero, decimal.Zero, errors.Wrapf(err, "invalid cart shipping %q", cfg.Cart.Shipping)
	}
	if taxRate.IsNegative() || shipping.IsNegative() {
		return decimal.Zero, decimal.Zero, errors.New("cart tax rate and shipping must not be negative")
	}

	return taxRate, shipping, nil
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreateCart fetches the user's cart, creating an empty one unless failIfMissing is set.
func (srv *cartService) GetOrCreateCart(ctx context.Context, userID string, failIfMissing bool) (*entity.Cart, error) {
	return srv.findOrCreateCart(ctx, srv.cartRepo, userID, failIfMissing)
}

func (srv *cartService) findOrCreateCart(ctx context.Context, cartRepo repository.CartRepository, userID string, failIfMissing bool) (*entity.Cart, error) {
	cart, err := cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}
	if failIfMissing {
		return nil, domainerrors.ErrCartNotFound
	}

	cart = &entity.Cart{
		UID:        uuid.New(),
		UserID:     userID,
		TaxRate:    srv.taxRate,
		Shipping:   srv.shipping,
		CartTotal:  decimal.Zero,
		Tax:        decimal.Zero,
		OrderTotal: decimal.Zero,
	}
	err = cartRepo.Create(ctx, cart)
	if errors.Is(err, repository.ErrDuplicateCart) {
		// Another request created it first.
		existing, findErr := cartRepo.FindByUserID(ctx, userID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to find concurrently created cart")
		}

		return existing, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Debug("Cart created", slog.String("userID", userID), slog.String("cartID", cart.UID.String()))

	return cart, nil
}

// GetCart returns the user's cart with items and product snapshots, creating it if absent.
func (srv *cartService) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := srv.findOrCreateCart(ctx, srv.cartRepo, userID, false)
	if err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}
	cart.Items = items

	return cart, nil
}

// CountItems returns the number of units in the user's cart, 0 without a cart.
func (srv *cartService) CountItems(ctx context.Context, userID string) (int, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to find cart")
	}

	return cart.NumItems, nil
}

// AddItem adds quantity of a product, merging with an existing line.
func (srv *cartService) AddItem(ctx context.Context, userID string, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	productUID, err := parseUID(input.ProductID, domainerrors.ErrProductNotFound)
	if err != nil {
		return nil, err
	}

	var updated *entity.Cart
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		product, err := repoFactory.NewProductRepository().FindByUID(ctx, productUID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}

		cart, err := srv.findOrCreateCart(ctx, cartRepo, userID, false)
		if err != nil {
			return err
		}

		if err := cartRepo.UpsertItem(ctx, cart.ID, product.ID, input.Quantity); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to add cart item")
		}

		_, updated, err = srv.recompute(ctx, cartRepo, cart)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Cart item added",
		slog.String("userID", userID),
		slog.String("productID", productUID.String()),
		slog.Int("quantity", input.Quantity),
		slog.Int("numItems", updated.NumItems),
	)
	revalidate(ctx, srv.pageCache, srv.log(ctx), constants.PathCart)

	return updated, nil
}

// RemoveItem deletes a line from the caller's cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID string, itemID uuid.UUID) (*entity.Cart, error) {
	updated, err := srv.mutateItem(ctx, userID, func(cartRepo repository.CartRepository, cart *entity.Cart) error {
		return cartRepo.DeleteItem(ctx, cart.ID, itemID)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Cart item removed", slog.String("userID", userID), slog.String("itemID", itemID.String()))

	return updated, nil
}

// SetItemQuantity overwrites a line's quantity. Zero removes the line.
func (srv *cartService) SetItemQuantity(ctx context.Context, userID string, itemID uuid.UUID, input *usecase.SetCartItemQuantityInput) (*entity.Cart, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	updated, err := srv.mutateItem(ctx, userID, func(cartRepo repository.CartRepository, cart *entity.Cart) error {
		if input.Quantity == 0 {
			return cartRepo.DeleteItem(ctx, cart.ID, itemID)
		}

		return cartRepo.UpdateItemQuantity(ctx, cart.ID, itemID, input.Quantity)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Cart item quantity set",
		slog.String("userID", userID),
		slog.String("itemID", itemID.String()),
		slog.Int("quantity", input.Quantity),
	)

	return updated, nil
}

// mutateItem runs an item mutation scoped to the caller's existing cart, then recomputes.
func (srv *cartService) mutateItem(ctx context.Context, userID string, mutate func(repository.CartRepository, *entity.Cart) error) (*entity.Cart, error) {
	var updated *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, err := srv.findOrCreateCart(ctx, cartRepo, userID, true)
		if err != nil {
			return err
		}

		if err := mutate(cartRepo, cart); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return domainerrors.ErrCartItemNotFound
			}

			return errors.Wrap(err, "failed to update cart item")
		}

		_, updated, err = srv.recompute(ctx, cartRepo, cart)

		return err
	})
	if err != nil {
		return nil, err
	}

	revalidate(ctx, srv.pageCache, srv.log(ctx), constants.PathCart)

	return updated, nil
}

// Recompute reloads the cart's items and rewrites its derived totals.
func (srv *cartService) Recompute(ctx context.Context, cart *entity.Cart) ([]*entity.CartItem, *entity.Cart, error) {
	var (
		items   []*entity.CartItem
		updated *entity.Cart
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		items, updated, err = srv.recompute(ctx, repoFactory.NewCartRepository(), cart)

		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return items, updated, nil
}

func (srv *cartService) recompute(ctx context.Context, cartRepo repository.CartRepository, cart *entity.Cart) ([]*entity.CartItem, *entity.Cart, error) {
	items, err := cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list cart items")
	}

	cart.Items = items
	cart.ApplyTotals(cart.Totals())

	if err := cartRepo.UpdateTotals(ctx, cart); err != nil {
		return nil, nil, errors.Wrap(err, "failed to update cart totals")
	}

	return items, cart, nil
}
