package creditmemo

import (
	"context"
	"time"

	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
)

// LineItemGenerator construye la línea de la nota de crédito para una unidad reembolsada.
// Hay una implementación por tipo de reembolso (unidad de producto, envío).
// La unidad debe pertenecer al pedido orderID; si no, domain.ErrNotFound.
type LineItemGenerator interface {
	Generate(ctx context.Context, orderID, unitID string, amount int64) (*entity.LineItem, error)
}

// NumberGenerator entrega el siguiente consecutivo de nota de crédito.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// IdentifierGenerator entrega un identificador único opaco.
type IdentifierGenerator interface {
	Generate() string
}

// Clock fuente de la fecha de emisión.
type Clock interface {
	Now() time.Time
}

// CreditMemoTxRunner ejecuta fn dentro de una transacción con el repositorio atado a la tx.
type CreditMemoTxRunner interface {
	RunCreditMemo(ctx context.Context, fn func(creditMemoRepo repository.CreditMemoRepository) error) error
}

// CreditMemoPDFGenerator genera la representación gráfica (PDF) de la nota de crédito.
type CreditMemoPDFGenerator interface {
	GenerateCreditMemoPDF(ctx context.Context, memo *entity.CreditMemo) ([]byte, error)
}

// CreditMemoXMLBuilder genera el documento UBL 2.1 CreditNote y su digest canónico.
type CreditMemoXMLBuilder interface {
	Build(memo *entity.CreditMemo) ([]byte, error)
	Digest(xmlBytes []byte) (string, error)
}
