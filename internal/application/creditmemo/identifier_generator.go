package creditmemo

import (
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Formatos de identificador soportados (CREDIT_MEMO_ID_FORMAT).
const (
	IdentifierFormatUUID = "uuid"
	IdentifierFormatULID = "ulid"
)

// UUIDIdentifierGenerator identificadores UUID v4.
type UUIDIdentifierGenerator struct{}

func (UUIDIdentifierGenerator) Generate() string {
	return uuid.New().String()
}

// ULIDIdentifierGenerator identificadores ULID (ordenables por tiempo).
type ULIDIdentifierGenerator struct{}

func (ULIDIdentifierGenerator) Generate() string {
	return ulid.Make().String()
}

// NewIdentifierGenerator devuelve el generador para el formato configurado; por defecto UUID.
func NewIdentifierGenerator(format string) IdentifierGenerator {
	if strings.EqualFold(strings.TrimSpace(format), IdentifierFormatULID) {
		return ULIDIdentifierGenerator{}
	}
	return UUIDIdentifierGenerator{}
}
