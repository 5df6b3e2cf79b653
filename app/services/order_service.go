package services

import (
	"strings"

	"github.com/damassweet/damas/app/models"
	"github.com/damassweet/damas/app/realtime"
	"github.com/damassweet/damas/app/repositories"
	"github.com/damassweet/damas/pkg/cache"
	"github.com/damassweet/damas/pkg/metrics"
)

// OrderService runs the order lifecycle. Every mutation follows the same
// shape: validate, single-row update, re-read with the driver join, publish.
// The re-read guarantees clients never receive an order without its
// driver_name when a driver is assigned.
type OrderService struct {
	orders    *repositories.OrderRepository
	users     *repositories.UserRepository
	broadcast realtime.Broadcaster
}

func NewOrderService(orders *repositories.OrderRepository, users *repositories.UserRepository, b realtime.Broadcaster) *OrderService {
	return &OrderService{orders: orders, users: users, broadcast: b}
}

// CreateOrderInput carries the dispatcher's new-order form.
type CreateOrderInput struct {
	ClientName  string  `json:"client_name" validate:"required,max=255"`
	ClientPhone string  `json:"client_phone" validate:"nullable,max=50"`
	Commune     string  `json:"commune" validate:"required"`
	Product     string  `json:"product" validate:"nullable,max=255"`
	BoxSize     string  `json:"box_size" validate:"required"`
	BoxCount    int     `json:"box_count" validate:"nullable,gte=1"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Notes       string  `json:"notes"`
}

// EditOrderInput carries the edit form. Status is deliberately absent:
// status only moves through the dedicated transition commands.
type EditOrderInput struct {
	ClientName  string  `json:"client_name" validate:"required,max=255"`
	ClientPhone string  `json:"client_phone" validate:"nullable,max=50"`
	Commune     string  `json:"commune" validate:"required"`
	BoxSize     string  `json:"box_size" validate:"required"`
	BoxCount    int     `json:"box_count" validate:"gte=1"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Notes       string  `json:"notes"`
}

// List returns every order, newest first, with driver names resolved.
func (s *OrderService) List() ([]models.Order, error) {
	return s.orders.All()
}

// Get returns one order with its driver name resolved.
func (s *OrderService) Get(id uint) (models.Order, error) {
	return s.orders.FindByID(id)
}

// Create registers a new order. Status starts at pending with no driver.
func (s *OrderService) Create(in CreateOrderInput, createdBy *uint) (models.Order, error) {
	if !models.ValidCommune(in.Commune) {
		return models.Order{}, ErrUnknownCommune
	}
	if !models.ValidBoxSize(in.BoxSize) {
		return models.Order{}, ErrUnknownBoxSize
	}

	product := strings.TrimSpace(in.Product)
	if product == "" {
		product = models.DefaultProduct
	}
	count := in.BoxCount
	if count < 1 {
		count = 1
	}

	order := models.Order{
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		Commune:     in.Commune,
		Product:     product,
		BoxSize:     in.BoxSize,
		BoxCount:    count,
		Amount:      in.Amount,
		Status:      models.StatusPending,
		Notes:       in.Notes,
		CreatedBy:   createdBy,
	}
	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, err
	}

	fresh, err := s.orders.FindByID(order.ID)
	if err != nil {
		return models.Order{}, err
	}

	s.invalidateReconciliation(fresh)
	s.broadcast.Publish(realtime.OrderAdded(fresh))
	return fresh, nil
}

// Edit updates client-facing fields. Permitted in any status; the status
// itself is untouched.
func (s *OrderService) Edit(id uint, in EditOrderInput) (models.Order, error) {
	if !models.ValidCommune(in.Commune) {
		return models.Order{}, ErrUnknownCommune
	}
	if !models.ValidBoxSize(in.BoxSize) {
		return models.Order{}, ErrUnknownBoxSize
	}

	if _, err := s.orders.FindByID(id); err != nil {
		return models.Order{}, err
	}

	fields := map[string]interface{}{
		"client_name":  in.ClientName,
		"client_phone": in.ClientPhone,
		"commune":      in.Commune,
		"box_size":     in.BoxSize,
		"box_count":    in.BoxCount,
		"amount":       in.Amount,
		"notes":        in.Notes,
	}
	return s.applyAndPublish(id, fields)
}

// AssignDriver puts the order into delivering and records the driver.
// Re-assignment while already delivering just overwrites driver_id. The
// driver must exist as a user; the role is intentionally not checked.
// A failure_reason left over from a failed attempt stays on the row.
func (s *OrderService) AssignDriver(id, driverID uint) (models.Order, error) {
	if _, err := s.users.FindByID(driverID); err != nil {
		return models.Order{}, ErrDriverNotFound
	}

	before, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, err
	}

	order, err := s.applyAndPublish(id, map[string]interface{}{
		"driver_id": driverID,
		"status":    models.StatusDelivering,
	})
	if err != nil {
		return models.Order{}, err
	}

	metrics.OrderTransitions.WithLabelValues(before.Status, models.StatusDelivering).Inc()
	return order, nil
}

// UpdateStatus moves the order to the given status. Marking delivered
// forces admin_confirmed back to 0 so the confirmatrice must re-confirm.
// Marking failed requires a reason; other transitions leave any existing
// failure_reason in place.
func (s *OrderService) UpdateStatus(id uint, status, failureReason string) (models.Order, error) {
	if !models.ValidStatus(status) {
		return models.Order{}, ErrUnknownStatus
	}
	if status == models.StatusFailed && strings.TrimSpace(failureReason) == "" {
		return models.Order{}, ErrMissingFailureReason
	}

	before, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, err
	}

	fields := map[string]interface{}{"status": status}
	switch status {
	case models.StatusDelivered:
		fields["admin_confirmed"] = 0
	case models.StatusFailed:
		fields["failure_reason"] = failureReason
	}

	order, err := s.applyAndPublish(id, fields)
	if err != nil {
		return models.Order{}, err
	}

	metrics.OrderTransitions.WithLabelValues(before.Status, status).Inc()
	return order, nil
}

// ConfirmDelivery stamps admin_confirmed=1. Idempotent; the status is not
// touched, so confirming twice is harmless.
func (s *OrderService) ConfirmDelivery(id uint) (models.Order, error) {
	if _, err := s.orders.FindByID(id); err != nil {
		return models.Order{}, err
	}

	return s.applyAndPublish(id, map[string]interface{}{"admin_confirmed": 1})
}

// SetDriverNotes replaces the driver's note text on the order.
func (s *OrderService) SetDriverNotes(id uint, text string) (models.Order, error) {
	if _, err := s.orders.FindByID(id); err != nil {
		return models.Order{}, err
	}

	return s.applyAndPublish(id, map[string]interface{}{"driver_notes": text})
}

// applyAndPublish is the shared tail of every mutation: update the row,
// re-read it with the driver join, drop the cached reconciliation for its
// day, broadcast ORDER_UPDATED.
func (s *OrderService) applyAndPublish(id uint, fields map[string]interface{}) (models.Order, error) {
	if err := s.orders.UpdateFields(id, fields); err != nil {
		return models.Order{}, err
	}

	fresh, err := s.orders.FindByID(id)
	if err != nil {
		return models.Order{}, err
	}

	s.invalidateReconciliation(fresh)
	s.broadcast.Publish(realtime.OrderUpdated(fresh))
	return fresh, nil
}

func (s *OrderService) invalidateReconciliation(o models.Order) {
	cache.Del(reconciliationCacheKey(o.CreatedAt.Format("2006-01-02"))) //nolint:errcheck
}
