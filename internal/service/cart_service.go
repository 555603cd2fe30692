package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/cart"
	"github.com/foodtuck/storefront-api/internal/domain"
	"github.com/foodtuck/storefront-api/internal/repository"
	"github.com/foodtuck/storefront-api/pkg/errors"
)

type cartService struct {
	repos    *repository.Repositories
	notifier *cart.Notifier
	logger   *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(repos *repository.Repositories, notifier *cart.Notifier, logger *zap.Logger) *cartService {
	return &cartService{
		repos:    repos,
		notifier: notifier,
		logger:   logger,
	}
}

// View loads the cart slot and computes the full cart view for the given
// coupon code. The coupon is volatile per-session state owned by the caller
// and resolved fresh on every call.
func (s *cartService) View(ctx context.Context, slotKey, couponCode string) (*CartView, error) {
	snapshot, err := s.repos.CartSlot.Load(ctx, slotKey)
	if err != nil {
		return nil, err
	}

	return s.BuildView(snapshot, couponCode), nil
}

// AddItem appends a line item to the cart. Items are never merged: adding the
// same product twice yields two rows.
func (s *cartService) AddItem(ctx context.Context, slotKey string, item domain.LineItem) (domain.CartSnapshot, error) {
	snapshot, err := s.repos.CartSlot.Load(ctx, slotKey)
	if err != nil {
		return nil, err
	}

	if item.Quantity < 1 {
		item.Quantity = 1
	}
	updated := append(snapshot, item)

	if err := s.repos.CartSlot.Save(ctx, slotKey, updated); err != nil {
		return nil, err
	}

	s.publish(slotKey, updated)
	return updated, nil
}

// SetQuantity sets the quantity of the item at index, clamped to a minimum
// of 1. An out-of-range index is treated as a defensive no-op: the snapshot
// is returned unchanged and nothing is persisted.
func (s *cartService) SetQuantity(ctx context.Context, slotKey string, index, quantity int) (domain.CartSnapshot, error) {
	snapshot, err := s.repos.CartSlot.Load(ctx, slotKey)
	if err != nil {
		return nil, err
	}

	updated, err := cart.SetQuantity(snapshot, index, quantity)
	if err != nil {
		if _, ok := err.(*errors.ErrOutOfRange); ok {
			s.logger.Warn("Ignoring quantity edit for out-of-range index",
				zap.String("slot", slotKey),
				zap.Int("index", index),
			)
			return snapshot, nil
		}
		return nil, err
	}

	if err := s.repos.CartSlot.Save(ctx, slotKey, updated); err != nil {
		return nil, err
	}

	s.publish(slotKey, updated)
	return updated, nil
}

// RemoveItem removes the item at index, preserving the order of the rest.
// Same out-of-range no-op contract as SetQuantity.
func (s *cartService) RemoveItem(ctx context.Context, slotKey string, index int) (domain.CartSnapshot, error) {
	snapshot, err := s.repos.CartSlot.Load(ctx, slotKey)
	if err != nil {
		return nil, err
	}

	updated, err := cart.RemoveItem(snapshot, index)
	if err != nil {
		if _, ok := err.(*errors.ErrOutOfRange); ok {
			s.logger.Warn("Ignoring removal for out-of-range index",
				zap.String("slot", slotKey),
				zap.Int("index", index),
			)
			return snapshot, nil
		}
		return nil, err
	}

	if err := s.repos.CartSlot.Save(ctx, slotKey, updated); err != nil {
		return nil, err
	}

	s.publish(slotKey, updated)
	return updated, nil
}

// Quantity returns the total quantity across the cart, for the navbar badge
func (s *cartService) Quantity(ctx context.Context, slotKey string) (int, error) {
	snapshot, err := s.repos.CartSlot.Load(ctx, slotKey)
	if err != nil {
		return 0, err
	}
	return cart.TotalQuantity(snapshot), nil
}

// BuildView computes the cart view for an already-loaded snapshot
func (s *cartService) BuildView(snapshot domain.CartSnapshot, couponCode string) *CartView {
	rate := cart.ResolveCoupon(couponCode)

	items := make([]CartItemView, len(snapshot))
	for i, item := range snapshot {
		items[i] = CartItemView{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			ImageURL: item.ImageURL,
			Quantity: item.Quantity,
			Subtotal: cart.LineSubtotal(item),
		}
	}

	return &CartView{
		Items:   items,
		Summary: cart.Summarize(snapshot, rate),
	}
}

func (s *cartService) publish(slotKey string, snapshot domain.CartSnapshot) {
	s.notifier.Publish(cart.Event{
		SlotKey:       slotKey,
		ItemCount:     len(snapshot),
		TotalQuantity: cart.TotalQuantity(snapshot),
	})
}
