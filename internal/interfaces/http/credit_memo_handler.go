package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/creditmemo-api/internal/application/creditmemo"
	"github.com/jhoicas/creditmemo-api/internal/application/dto"
)

// DocumentDigestHeader cabecera con el SHA-256 (hex) de la forma canónica del XML.
const DocumentDigestHeader = "X-Document-Digest"

// CreditMemoHandler maneja reembolsos y consultas de notas de crédito (protegido).
type CreditMemoHandler struct {
	refundUC   *creditmemo.RefundUseCase
	queryUC    *creditmemo.QueryUseCase
	documentUC *creditmemo.DocumentUseCase
}

// NewCreditMemoHandler construye el handler.
func NewCreditMemoHandler(refundUC *creditmemo.RefundUseCase, queryUC *creditmemo.QueryUseCase, documentUC *creditmemo.DocumentUseCase) *CreditMemoHandler {
	return &CreditMemoHandler{refundUC: refundUC, queryUC: queryUC, documentUC: documentUC}
}

// Refund godoc
// @Summary      Reembolsar unidades y emitir nota de crédito
// @Tags         credit-memos
// @Accept       json
// @Produce      json
// @Param        number  path  string                  true  "Número de pedido"
// @Param        body    body  dto.RefundUnitsRequest  true  "unidades, envíos, total, comentario"
// @Success      201   {object}  dto.CreditMemoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{number}/refunds [post]
func (h *CreditMemoHandler) Refund(c *fiber.Ctx) error {
	var in dto.RefundUnitsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.refundUC.RefundUnits(c.UserContext(), c.Params("number"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByOrder notas de crédito de un pedido.
// GET /api/orders/:number/credit-memos
func (h *CreditMemoHandler) ListByOrder(c *fiber.Ctx) error {
	out, err := h.queryUC.ListByOrder(c.UserContext(), c.Params("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List listado paginado con filtro por canal.
// GET /api/credit-memos?channel=&limit=&offset=
func (h *CreditMemoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit/offset inválidos"})
	}
	out, err := h.queryUC.List(c.UserContext(), c.Query("channel"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID detalle de la nota de crédito.
// GET /api/credit-memos/:id
func (h *CreditMemoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF descarga la representación gráfica.
// GET /api/credit-memos/:id/pdf
func (h *CreditMemoHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.documentUC.DownloadCreditMemoPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ExportUBL descarga el XML UBL 2.1 CreditNote con su digest en X-Document-Digest.
// GET /api/credit-memos/:id/ubl
func (h *CreditMemoHandler) ExportUBL(c *fiber.Ctx) error {
	xmlBytes, digest, filename, err := h.documentUC.ExportCreditMemoUBL(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(DocumentDigestHeader, digest)
	return c.Send(xmlBytes)
}
