package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderTxRunner ejecuta fn dentro de una transacción de base de datos. Los
// repositorios que recibe fn operan sobre esa transacción: si fn devuelve
// error se revierte todo, incluido el descuento de stock.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository, products repository.ProductRepository, history repository.OrderHistoryRepository) error) error
}

// OrderUseCase órdenes de compra: creación transaccional con descuento de
// stock, marcado de pago y entrega, y consulta.
type OrderUseCase struct {
	orders  repository.OrderRepository
	history repository.OrderHistoryRepository
	tx      OrderTxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, history repository.OrderHistoryRepository, tx OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{orders: orders, history: history, tx: tx}
}

// Create crea la orden en una sola transacción: precios por línea tomados del
// catálogo, totales calculados en el servidor, stock descontado por línea y un
// evento inicial "pending" en el historial. Si alguna línea no tiene stock
// suficiente, nada queda persistido.
func (uc *OrderUseCase) Create(accountID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 || in.ShippingAddress == "" || in.ShippingCity == "" || in.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TaxPrice.IsNegative() || in.ShippingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		AccountID:       accountID,
		ShippingAddress: in.ShippingAddress,
		ShippingCity:    in.ShippingCity,
		PaymentMethod:   in.PaymentMethod,
		TaxPrice:        in.TaxPrice,
		ShippingPrice:   in.ShippingPrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.tx.Run(context.Background(), func(orders repository.OrderRepository, products repository.ProductRepository, history repository.OrderHistoryRepository) error {
		itemsPrice := decimal.Zero
		for _, item := range in.Items {
			if item.Quantity < 1 {
				return domain.ErrInvalidInput
			}
			product, err := products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := products.DecrementQuantity(product.ID, item.Quantity); err != nil {
				return err
			}
			order.Items = append(order.Items, entity.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
			itemsPrice = itemsPrice.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		order.ItemsPrice = itemsPrice
		order.TotalPrice = itemsPrice.Add(order.TaxPrice).Add(order.ShippingPrice)
		if err := orders.Create(order); err != nil {
			return err
		}
		return history.Create(&entity.OrderHistory{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Status:    entity.OrderPending,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return orderResponse(order), nil
}

// GetByID obtiene una orden. Solo el dueño o un admin pueden verla.
func (uc *OrderUseCase) GetByID(id, actorID, actorRole string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if actorRole != entity.RoleAdmin && order.AccountID != actorID {
		return nil, domain.ErrForbidden
	}
	return orderResponse(order), nil
}

// List lista órdenes paginadas (solo admin).
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orders.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *orderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Pay marca la orden como pagada con el resultado reportado por la pasarela.
func (uc *OrderUseCase) Pay(id, actorID, actorRole string, in dto.PayOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if actorRole != entity.RoleAdmin && order.AccountID != actorID {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = entity.PaymentResult{
		ID:           in.ID,
		Status:       in.Status,
		UpdateTime:   in.UpdateTime,
		EmailAddress: in.EmailAddress,
	}
	order.UpdatedAt = now
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return orderResponse(order), nil
}

// Deliver marca la orden como entregada (solo admin).
func (uc *OrderUseCase) Deliver(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now
	order.UpdatedAt = now
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return orderResponse(order), nil
}

// Delete elimina una orden (solo admin). Devuelve false si no existía.
func (uc *OrderUseCase) Delete(id string) (bool, error) {
	return uc.orders.Delete(id)
}

// AddHistory agrega un evento de seguimiento a la orden.
func (uc *OrderUseCase) AddHistory(orderID string, in dto.OrderHistoryRequest) (*dto.OrderHistoryResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	event := &entity.OrderHistory{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Status:    in.Status,
		CreatedAt: time.Now(),
	}
	if err := uc.history.Create(event); err != nil {
		return nil, err
	}
	return historyResponse(event), nil
}

// ListHistory lista los eventos de seguimiento de una orden.
func (uc *OrderUseCase) ListHistory(orderID string) ([]dto.OrderHistoryResponse, error) {
	list, err := uc.history.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderHistoryResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *historyResponse(h))
	}
	return items, nil
}

// UpdateHistory corrige el estado de un evento de seguimiento.
func (uc *OrderUseCase) UpdateHistory(id string, in dto.OrderHistoryRequest) (*dto.OrderHistoryResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	event, err := uc.history.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	event.Status = in.Status
	if err := uc.history.Update(event); err != nil {
		return nil, err
	}
	return historyResponse(event), nil
}

// DeleteHistory elimina un evento de seguimiento. Devuelve false si no existía.
func (uc *OrderUseCase) DeleteHistory(id string) (bool, error) {
	return uc.history.Delete(id)
}

func orderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		AccountID:       o.AccountID,
		Items:           items,
		ShippingAddress: o.ShippingAddress,
		ShippingCity:    o.ShippingCity,
		PaymentMethod:   o.PaymentMethod,
		ItemsPrice:      o.ItemsPrice,
		TaxPrice:        o.TaxPrice,
		ShippingPrice:   o.ShippingPrice,
		TotalPrice:      o.TotalPrice,
		IsPaid:          o.IsPaid,
		PaidAt:          o.PaidAt,
		IsDelivered:     o.IsDelivered,
		DeliveredAt:     o.DeliveredAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func historyResponse(h *entity.OrderHistory) *dto.OrderHistoryResponse {
	return &dto.OrderHistoryResponse{
		ID:        h.ID,
		OrderID:   h.OrderID,
		Status:    h.Status,
		CreatedAt: h.CreatedAt,
	}
}
