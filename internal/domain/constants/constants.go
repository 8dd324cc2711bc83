// Package constants holds string constants shared across layers.
package constants

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

const (
	IdentityProviderJWT      = "jwt"
	IdentityProviderFirebase = "firebase"
)

// Checkout event types published to the event bus.
const (
	EventCheckoutSessionCreated     = "checkout.session_created"
	EventCheckoutOrderPaid          = "checkout.order_paid"
	EventCheckoutConfirmationFailed = "checkout.confirmation_failed"
	EventCheckoutSessionAbandoned   = "checkout.session_abandoned"
)

// Page paths revalidated after mutations.
const (
	PathCart          = "/cart"
	PathOrders        = "/orders"
	PathReviews       = "/reviews"
	PathFavorites     = "/favorites"
	PathAdminProducts = "/admin/products"
	PathProductsIndex = "/products"
)

// ProductPath returns the public detail path of a product.
func ProductPath(productUID string) string {
	return PathProductsIndex + "/" + productUID
}

// AdminProductEditPath returns the admin edit path of a product.
func AdminProductEditPath(productUID string) string {
	return PathAdminProducts + "/" + productUID + "/edit"
}
