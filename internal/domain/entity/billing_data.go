package entity

// CustomerBillingData copia congelada de la dirección de facturación del cliente.
type CustomerBillingData struct {
	FullName     string
	Street       string
	Postcode     string
	CountryCode  string
	City         string
	Company      string // opcional
	ProvinceCode string // opcional
	ProvinceName string // opcional
}

// ShopBillingData copia congelada de los datos fiscales de la tienda.
type ShopBillingData struct {
	Company     string
	TaxID       string
	CountryCode string
	Street      string
	City        string
	Postcode    string
}
