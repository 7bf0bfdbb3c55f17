package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/app/models"
	"github.com/Austinkuria/E-commerce-Site/app/repositories"
	"github.com/Austinkuria/E-commerce-Site/pkg/event"
)

// CartView is the cart as the storefront sees it: live prices with the
// totals the checkout pipeline would charge right now.
type CartView struct {
	Items       []CartLine `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	ShippingFee float64    `json:"shipping_fee"`
	Total       float64    `json:"total"`
}

// CartLine is one priced line of a CartView.
type CartLine struct {
	ProductID uint           `json:"product_id"`
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal float64        `json:"line_total"`
}

// CartService manages the contents of user carts.
type CartService struct {
	carts    *repositories.CartRepository
	products *repositories.ProductRepository
}

func NewCartService() *CartService {
	return &CartService{
		carts:    repositories.NewCartRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Get returns the user's cart with computed totals. A user without a cart
// gets an empty view, not an error.
func (s *CartService) Get(userID uint) (CartView, error) {
	cart, err := s.carts.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return buildView(nil), nil
		}
		return CartView{}, err
	}
	return buildView(cart.Items), nil
}

// AddItem puts qty units of a product into the user's cart. Adding a product
// already in the cart bumps its quantity. The combined quantity must be
// coverable by current stock.
func (s *CartService) AddItem(userID, productID uint, qty int) (CartView, error) {
	if qty < 1 {
		return CartView{}, ErrInvalidQuantity
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartView{}, ErrNotFound
		}
		return CartView{}, err
	}

	cart, err := s.carts.FindOrCreateByUser(userID)
	if err != nil {
		return CartView{}, err
	}

	item, err := s.carts.FindItem(cart.ID, productID)
	switch {
	case err == nil:
		item.Quantity += qty
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: qty}
	default:
		return CartView{}, err
	}

	if !product.InStock(item.Quantity) {
		return CartView{}, ErrOutOfStock
	}

	if err := s.carts.SaveItem(&item); err != nil {
		return CartView{}, err
	}

	event.Fire("cart.updated", cart.ID)
	return s.Get(userID)
}

// UpdateItem applies a quantity delta to a cart line. Driving the quantity
// to zero or below removes the line; a line never persists with a
// non-positive quantity.
func (s *CartService) UpdateItem(userID, productID uint, delta int) (CartView, error) {
	cart, err := s.carts.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartView{}, ErrNotFound
		}
		return CartView{}, err
	}

	item, err := s.carts.FindItem(cart.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartView{}, ErrNotFound
		}
		return CartView{}, err
	}

	qty := item.Quantity + delta
	if qty <= 0 {
		if err := s.carts.DeleteItem(cart.ID, productID); err != nil {
			return CartView{}, err
		}
		event.Fire("cart.updated", cart.ID)
		return s.Get(userID)
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartView{}, ErrNotFound
		}
		return CartView{}, err
	}
	if !product.InStock(qty) {
		return CartView{}, ErrOutOfStock
	}

	item.Quantity = qty
	if err := s.carts.SaveItem(&item); err != nil {
		return CartView{}, err
	}

	event.Fire("cart.updated", cart.ID)
	return s.Get(userID)
}

// RemoveItem deletes a product line from the user's cart. Removing a line
// that is not there is a no-op, not an error.
func (s *CartService) RemoveItem(userID, productID uint) (CartView, error) {
	cart, err := s.carts.FindByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return buildView(nil), nil
		}
		return CartView{}, err
	}

	if err := s.carts.DeleteItem(cart.ID, productID); err != nil {
		return CartView{}, err
	}

	event.Fire("cart.updated", cart.ID)
	return s.Get(userID)
}

// buildView prices cart items at their current catalogue price and derives
// the totals.
func buildView(items []models.CartItem) CartView {
	view := CartView{Items: make([]CartLine, 0, len(items))}
	for i := range items {
		line := CartLine{
			ProductID: items[i].ProductID,
			Product:   items[i].Product,
			Quantity:  items[i].Quantity,
			LineTotal: items[i].LineTotal(),
		}
		view.Subtotal += line.LineTotal
		view.Items = append(view.Items, line)
	}
	view.ShippingFee = ShippingFee(view.Subtotal)
	view.Total = view.Subtotal + view.ShippingFee
	return view
}
