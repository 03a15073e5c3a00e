package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
)

var _ repository.CreditMemoSequenceRepository = (*CreditMemoSequenceRepo)(nil)

// CreditMemoSequenceRepo secuencia de notas de crédito en una fila de credit_memo_sequences.
// El UPSERT toma el lock de la fila, así que dos instancias nunca reciben el mismo índice.
type CreditMemoSequenceRepo struct {
	q Querier
}

// NewCreditMemoSequenceRepository construye el adaptador.
func NewCreditMemoSequenceRepository(q Querier) *CreditMemoSequenceRepo {
	return &CreditMemoSequenceRepo{q: q}
}

// Next devuelve el índice actual (0 en la primera llamada) y lo incrementa.
func (r *CreditMemoSequenceRepo) Next(ctx context.Context) (int64, error) {
	const query = `
		INSERT INTO credit_memo_sequences (id, idx) VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET idx = credit_memo_sequences.idx + 1
		RETURNING idx - 1`
	var index int64
	if err := r.q.QueryRow(ctx, query).Scan(&index); err != nil {
		return 0, fmt.Errorf("next credit memo sequence: %w", err)
	}
	return index, nil
}
