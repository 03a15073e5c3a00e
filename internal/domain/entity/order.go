package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order es la vista del pedido que necesita la generación de notas de crédito.
// El pedido lo administra otro sistema; aquí solo se lee.
type Order struct {
	ID             string
	Number         string
	CurrencyCode   string
	LocaleCode     string
	Channel        *Channel
	BillingAddress *Address
	CreatedAt      time.Time
}

// Channel canal de venta del pedido. BillingData es nil si el canal no tiene datos de facturación de la tienda.
type Channel struct {
	ID          string
	Code        string
	Name        string
	Color       string
	BillingData *ChannelBillingData
}

// ChannelBillingData datos fiscales de la tienda configurados en el canal.
type ChannelBillingData struct {
	Company     string
	TaxID       string
	CountryCode string
	Street      string
	City        string
	Postcode    string
}

// Address dirección de facturación del cliente.
type Address struct {
	FirstName    string
	LastName     string
	Company      string
	Street       string
	City         string
	Postcode     string
	CountryCode  string
	ProvinceCode string // opcional
	ProvinceName string // opcional
}

// OrderItem línea del pedido (un producto/variante con N unidades).
type OrderItem struct {
	ID          string
	OrderID     string
	ProductName string
	VariantName string
}

// OrderItemUnit unidad individual de una línea del pedido.
// Total y TaxTotal son los valores que el pedido registró al momento de la compra (impuesto incluido).
type OrderItemUnit struct {
	ID        string
	OrderItem *OrderItem
	Total     int64
	TaxTotal  int64
	Tax       *AppliedTax // nil = unidad sin impuesto
}

// Shipment envío del pedido con su cargo (impuesto incluido).
type Shipment struct {
	ID         string
	OrderID    string
	MethodName string
	Total      int64
	TaxTotal   int64
	Tax        *AppliedTax // nil = envío sin impuesto
}

// AppliedTax tasa de impuesto aplicada históricamente a una unidad o envío.
type AppliedTax struct {
	Label string          // etiqueta mostrada (ej: "VAT (10%)")
	Rate  decimal.Decimal // 0.10 = 10%
}
