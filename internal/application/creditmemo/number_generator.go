package creditmemo

import (
	"context"
	"fmt"

	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
)

// Valores por defecto del consecutivo: YYYY/MM/000000001.
const (
	DefaultNumberStart  int64 = 1
	DefaultNumberLength       = 9
)

var _ NumberGenerator = (*SequentialNumberGenerator)(nil)

// SequentialNumberGenerator arma el consecutivo "YYYY/MM/NNNNNNNNN" con el índice de la secuencia.
// La unicidad la garantiza el repositorio de secuencia, no este servicio.
type SequentialNumberGenerator struct {
	sequenceRepo repository.CreditMemoSequenceRepository
	clock        Clock
	startNumber  int64
	numberLength int
}

// NewSequentialNumberGenerator construye el generador. startNumber < 1 o numberLength < 1 usan los valores por defecto.
func NewSequentialNumberGenerator(
	sequenceRepo repository.CreditMemoSequenceRepository,
	clock Clock,
	startNumber int64,
	numberLength int,
) *SequentialNumberGenerator {
	if startNumber < 1 {
		startNumber = DefaultNumberStart
	}
	if numberLength < 1 {
		numberLength = DefaultNumberLength
	}
	return &SequentialNumberGenerator{
		sequenceRepo: sequenceRepo,
		clock:        clock,
		startNumber:  startNumber,
		numberLength: numberLength,
	}
}

// Generate consume el siguiente índice y devuelve el número formateado.
func (g *SequentialNumberGenerator) Generate(ctx context.Context) (string, error) {
	index, err := g.sequenceRepo.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("siguiente índice de secuencia: %w", err)
	}
	prefix := g.clock.Now().Format("2006/01")
	return fmt.Sprintf("%s/%0*d", prefix, g.numberLength, g.startNumber+index), nil
}
