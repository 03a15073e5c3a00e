package repository

import (
	"context"

	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
)

// CreditMemoFilter filtros del listado de notas de crédito.
type CreditMemoFilter struct {
	ChannelCode string // vacío = todos los canales
	Limit       int
	Offset      int
}

// CreditMemoRepository puerto de persistencia de notas de crédito.
// Las notas solo se insertan; no existe Update.
type CreditMemoRepository interface {
	Create(ctx context.Context, memo *entity.CreditMemo) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.CreditMemo, error)
	ListByOrderNumber(ctx context.Context, orderNumber string) ([]*entity.CreditMemo, error)
	List(ctx context.Context, filter CreditMemoFilter) ([]*entity.CreditMemo, int, error)
}

// CreditMemoSequenceRepository entrega el siguiente índice del consecutivo de notas de crédito.
// La implementación debe garantizar unicidad con varias instancias concurrentes.
type CreditMemoSequenceRepository interface {
	Next(ctx context.Context) (int64, error)
}
