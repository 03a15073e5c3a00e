package creditmemo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
)

// DocumentUseCase exporta la nota de crédito ya emitida (PDF y UBL).
// Solo lee lo guardado: ningún valor se recalcula.
type DocumentUseCase struct {
	creditMemoRepo repository.CreditMemoRepository
	pdfGenerator   CreditMemoPDFGenerator
	xmlBuilder     CreditMemoXMLBuilder
}

// NewDocumentUseCase construye el caso de uso inyectando todas sus dependencias.
func NewDocumentUseCase(
	creditMemoRepo repository.CreditMemoRepository,
	pdfGenerator CreditMemoPDFGenerator,
	xmlBuilder CreditMemoXMLBuilder,
) *DocumentUseCase {
	return &DocumentUseCase{
		creditMemoRepo: creditMemoRepo,
		pdfGenerator:   pdfGenerator,
		xmlBuilder:     xmlBuilder,
	}
}

// DownloadCreditMemoPDF genera el PDF de la nota de crédito.
//
// Retorna:
//   - (pdfBytes, filename, nil)    si todo sale bien.
//   - domain.ErrCreditMemoNotFound si la nota no existe.
func (uc *DocumentUseCase) DownloadCreditMemoPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	memo, err := loadCreditMemo(ctx, uc.creditMemoRepo, id)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdfGenerator.GenerateCreditMemoPDF(ctx, memo)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, DocumentFilename(memo.Number, "pdf"), nil
}

// ExportCreditMemoUBL genera el XML UBL 2.1 CreditNote y su digest SHA-256 canónico (hex).
func (uc *DocumentUseCase) ExportCreditMemoUBL(ctx context.Context, id string) (xmlBytes []byte, digest, filename string, err error) {
	memo, err := loadCreditMemo(ctx, uc.creditMemoRepo, id)
	if err != nil {
		return nil, "", "", err
	}
	xmlBytes, err = uc.xmlBuilder.Build(memo)
	if err != nil {
		return nil, "", "", fmt.Errorf("ubl: generar XML: %w", err)
	}
	digest, err = uc.xmlBuilder.Digest(xmlBytes)
	if err != nil {
		return nil, "", "", fmt.Errorf("ubl: digest: %w", err)
	}
	return xmlBytes, digest, DocumentFilename(memo.Number, "xml"), nil
}

// DocumentFilename nombre de archivo a partir del consecutivo ("2018/07/000001111" -> "2018_07_000001111.pdf").
func DocumentFilename(number, ext string) string {
	return strings.ReplaceAll(number, "/", "_") + "." + ext
}
