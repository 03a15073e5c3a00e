package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// RefundUnitsRequest body para POST /api/orders/:number/refunds.
// Montos en unidades menores de la moneda del pedido (ej: centavos).
type RefundUnitsRequest struct {
	Total     int64               `json:"total" validate:"gte=0"`
	Units     []UnitRefundRequest `json:"units" validate:"dive"`
	Shipments []UnitRefundRequest `json:"shipments" validate:"dive"`
	Comment   string              `json:"comment" validate:"max=1000"`
}

// UnitRefundRequest monto reembolsado sobre una unidad de producto o un envío.
type UnitRefundRequest struct {
	ID     string `json:"id" validate:"required"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

// Validate valida tags y exige al menos una unidad o envío.
func (r *RefundUnitsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if len(r.Units) == 0 && len(r.Shipments) == 0 {
		return errNothingToRefund
	}
	return nil
}

// CreditMemoResponse nota de crédito con detalle para GET /api/credit-memos/:id.
type CreditMemoResponse struct {
	ID           string                   `json:"id"`
	Number       string                   `json:"number"`
	OrderNumber  string                   `json:"order_number"`
	Total        int64                    `json:"total"`
	Subtotal     int64                    `json:"subtotal"`
	TaxTotal     int64                    `json:"tax_total"`
	CurrencyCode string                   `json:"currency_code"`
	LocaleCode   string                   `json:"locale_code"`
	Channel      ChannelResponse          `json:"channel"`
	LineItems    []CreditMemoLineResponse `json:"line_items"`
	TaxItems     []TaxItemResponse        `json:"tax_items"`
	Comment      string                   `json:"comment"`
	IssuedAt     string                   `json:"issued_at"` // RFC 3339
	From         CustomerBillingResponse  `json:"from"`
	To           *ShopBillingResponse     `json:"to,omitempty"`
}

// ChannelResponse canal en el que se emitió la nota.
type ChannelResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CreditMemoLineResponse línea de la nota de crédito.
type CreditMemoLineResponse struct {
	Label     string  `json:"label"`
	Amount    int64   `json:"amount"`
	NetAmount int64   `json:"net_amount"`
	TaxRate   *string `json:"tax_rate"`
	TaxAmount int64   `json:"tax_amount"`
}

// TaxItemResponse impuesto agrupado por tasa.
type TaxItemResponse struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// CustomerBillingResponse datos de facturación del cliente ("desde").
type CustomerBillingResponse struct {
	FullName     string `json:"full_name"`
	Street       string `json:"street"`
	Postcode     string `json:"postcode"`
	CountryCode  string `json:"country_code"`
	City         string `json:"city"`
	Company      string `json:"company,omitempty"`
	ProvinceCode string `json:"province_code,omitempty"`
	ProvinceName string `json:"province_name,omitempty"`
}

// ShopBillingResponse datos fiscales de la tienda ("para").
type ShopBillingResponse struct {
	Company     string `json:"company"`
	TaxID       string `json:"tax_id"`
	CountryCode string `json:"country_code"`
	Street      string `json:"street"`
	City        string `json:"city"`
	Postcode    string `json:"postcode"`
}

// CreditMemoListResponse listado paginado de notas de crédito.
type CreditMemoListResponse struct {
	Items []CreditMemoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
