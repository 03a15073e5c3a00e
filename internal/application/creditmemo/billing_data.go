package creditmemo

import (
	"strings"

	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
)

// BuildCustomerBillingData congela la dirección de facturación del cliente.
// La provincia se conserva cuando la dirección la trae.
func BuildCustomerBillingData(address *entity.Address) entity.CustomerBillingData {
	return entity.CustomerBillingData{
		FullName:     strings.TrimSpace(address.FirstName + " " + address.LastName),
		Street:       address.Street,
		Postcode:     address.Postcode,
		CountryCode:  address.CountryCode,
		City:         address.City,
		Company:      address.Company,
		ProvinceCode: address.ProvinceCode,
		ProvinceName: address.ProvinceName,
	}
}

// BuildShopBillingData congela los datos fiscales de la tienda. Devuelve nil si el canal no los tiene.
func BuildShopBillingData(channel *entity.Channel) *entity.ShopBillingData {
	if channel == nil || channel.BillingData == nil {
		return nil
	}
	b := channel.BillingData
	return &entity.ShopBillingData{
		Company:     b.Company,
		TaxID:       b.TaxID,
		CountryCode: b.CountryCode,
		Street:      b.Street,
		City:        b.City,
		Postcode:    b.Postcode,
	}
}
