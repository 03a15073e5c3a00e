package creditmemo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/creditmemo-api/internal/application/dto"
	"github.com/jhoicas/creditmemo-api/internal/domain"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
)

// QueryUseCase consultas de notas de crédito (detalle, por pedido, listado).
type QueryUseCase struct {
	creditMemoRepo repository.CreditMemoRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(creditMemoRepo repository.CreditMemoRepository) *QueryUseCase {
	return &QueryUseCase{creditMemoRepo: creditMemoRepo}
}

// Get obtiene una nota de crédito por ID.
func (uc *QueryUseCase) Get(ctx context.Context, id string) (*dto.CreditMemoResponse, error) {
	memo, err := loadCreditMemo(ctx, uc.creditMemoRepo, id)
	if err != nil {
		return nil, err
	}
	return ToResponse(memo), nil
}

// ListByOrder lista las notas de crédito emitidas para un pedido, en orden de emisión.
func (uc *QueryUseCase) ListByOrder(ctx context.Context, orderNumber string) ([]dto.CreditMemoResponse, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return nil, domain.ErrInvalidInput
	}
	memos, err := uc.creditMemoRepo.ListByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return toResponses(memos), nil
}

// List listado paginado, opcionalmente filtrado por código de canal.
// Un limit u offset fuera de rango retorna domain.ErrInvalidInput.
func (uc *QueryUseCase) List(ctx context.Context, channelCode string, page dto.PageRequest) (*dto.CreditMemoListResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	memos, total, err := uc.creditMemoRepo.List(ctx, repository.CreditMemoFilter{
		ChannelCode: strings.TrimSpace(channelCode),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreditMemoListResponse{
		Items: toResponses(memos),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func loadCreditMemo(ctx context.Context, repo repository.CreditMemoRepository, id string) (*entity.CreditMemo, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	memo, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, domain.ErrCreditMemoNotFound
	}
	return memo, nil
}
