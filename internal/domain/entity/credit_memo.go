package entity

import "time"

// CreditMemo nota de crédito: documento inmutable que registra un reembolso sobre un pedido.
// Todos los valores derivados (impuestos, totales, datos de facturación) quedan congelados
// al momento de la emisión; nada se recalcula al leerla.
type CreditMemo struct {
	ID           string
	Number       string // consecutivo legible (ej: "2018/07/000001111")
	OrderID      string
	OrderNumber  string
	Total        int64 // unidades menores
	CurrencyCode string
	LocaleCode   string
	Channel      ChannelRef
	LineItems    []LineItem // primero unidades de producto, luego envíos
	TaxItems     []TaxItem
	Comment      string
	IssuedAt     time.Time
	From         CustomerBillingData
	To           *ShopBillingData // nil si el canal no tiene datos de facturación
}

// ChannelRef referencia al canal tal como estaba al emitir la nota.
type ChannelRef struct {
	Code  string
	Name  string
	Color string
}

// LineItem línea de la nota de crédito: una unidad reembolsada.
// TaxRate nil significa "sin impuesto" (TaxAmount es 0).
type LineItem struct {
	Label     string
	Amount    int64 // bruto, impuesto incluido
	TaxRate   *string
	TaxAmount int64
}

// NetAmount monto sin impuesto.
func (l LineItem) NetAmount() int64 {
	return l.Amount - l.TaxAmount
}

// TaxItem total de impuesto agrupado por etiqueta de tasa.
type TaxItem struct {
	Label  string
	Amount int64
}

// Subtotal suma de los montos netos de las líneas.
func (c *CreditMemo) Subtotal() int64 {
	var sum int64
	for _, l := range c.LineItems {
		sum += l.NetAmount()
	}
	return sum
}

// TaxTotal suma de los tax items.
func (c *CreditMemo) TaxTotal() int64 {
	var sum int64
	for _, t := range c.TaxItems {
		sum += t.Amount
	}
	return sum
}

// LinesTotal suma de los montos brutos de las líneas.
func (c *CreditMemo) LinesTotal() int64 {
	var sum int64
	for _, l := range c.LineItems {
		sum += l.Amount
	}
	return sum
}
