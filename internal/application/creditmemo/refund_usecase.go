package creditmemo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/creditmemo-api/internal/application/dto"
	"github.com/jhoicas/creditmemo-api/internal/domain"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
	"github.com/jhoicas/creditmemo-api/pkg/logger"
)

// RefundUseCase emite la nota de crédito de un reembolso y la guarda en una sola transacción.
type RefundUseCase struct {
	generator *CreditMemoGenerator
	txRunner  CreditMemoTxRunner
	log       *logger.Logger
}

// NewRefundUseCase construye el caso de uso.
func NewRefundUseCase(generator *CreditMemoGenerator, txRunner CreditMemoTxRunner, log *logger.Logger) *RefundUseCase {
	return &RefundUseCase{
		generator: generator,
		txRunner:  txRunner,
		log:       log.Component("refund"),
	}
}

// RefundUnits genera y persiste la nota de crédito para las unidades y envíos reembolsados.
func (uc *RefundUseCase) RefundUnits(ctx context.Context, orderNumber string, in dto.RefundUnitsRequest) (*dto.CreditMemoResponse, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	unitRefunds := make([]entity.OrderItemUnitRefund, 0, len(in.Units))
	for _, u := range in.Units {
		unitRefunds = append(unitRefunds, entity.OrderItemUnitRefund{UnitID: u.ID, Amount: u.Amount})
	}
	shipmentRefunds := make([]entity.ShipmentRefund, 0, len(in.Shipments))
	for _, s := range in.Shipments {
		shipmentRefunds = append(shipmentRefunds, entity.ShipmentRefund{UnitID: s.ID, Amount: s.Amount})
	}

	log := uc.log.Ctx(ctx)
	memo, err := uc.generator.Generate(ctx, orderNumber, in.Total, unitRefunds, shipmentRefunds, in.Comment)
	if err != nil {
		return nil, err
	}
	if linesTotal := memo.LinesTotal(); linesTotal != memo.Total {
		log.Debug().
			Str("number", memo.Number).
			Int64("total", memo.Total).
			Int64("lines_total", linesTotal).
			Msg("total del reembolso distinto de la suma de líneas")
	}

	err = uc.txRunner.RunCreditMemo(ctx, func(creditMemoRepo repository.CreditMemoRepository) error {
		return creditMemoRepo.Create(ctx, memo)
	})
	if err != nil {
		log.Error().Err(err).
			Str("credit_memo_id", memo.ID).
			Str("number", memo.Number).
			Msg("guardar nota de crédito")
		return nil, fmt.Errorf("guardar nota de crédito: %w", err)
	}

	log.Info().
		Str("credit_memo_id", memo.ID).
		Str("number", memo.Number).
		Str("order_number", memo.OrderNumber).
		Int64("total", memo.Total).
		Int("lines", len(memo.LineItems)).
		Msg("nota de crédito emitida")

	return ToResponse(memo), nil
}
