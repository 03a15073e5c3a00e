package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/internal/infrastructure/pdf"
)

func TestGenerateCreditMemoPDF_DocumentoValido(t *testing.T) {
	vat := "VAT (10%)"
	memo := &entity.CreditMemo{
		ID:           "7903c83a-4c5e-4bcf-81d8-9dc304c6a353",
		Number:       "2018/07/00001111",
		OrderNumber:  "000666",
		Total:        1400,
		CurrencyCode: "GBP",
		LocaleCode:   "en_US",
		Channel:      entity.ChannelRef{Code: "WEB-US", Name: "United States", Color: "Linen"},
		LineItems: []entity.LineItem{
			{Label: "Portal gun", Amount: 500, TaxRate: &vat, TaxAmount: 50},
			{Label: "Galaxy post", Amount: 400},
		},
		TaxItems: []entity.TaxItem{{Label: vat, Amount: 50}},
		Comment:  "Comment",
		IssuedAt: time.Date(2018, 7, 12, 10, 30, 0, 0, time.UTC),
		From: entity.CustomerBillingData{
			FullName: "Rick Sanchez", Street: "Universe St. 444", Postcode: "000333",
			CountryCode: "US", City: "Los Angeles",
		},
		To: &entity.ShopBillingData{
			Company: "Needful Things", TaxID: "000222", CountryCode: "US",
			Street: "Main St. 123", City: "New York", Postcode: "90222",
		},
	}

	out, err := pdf.NewMarotoPDFGenerator("").GenerateCreditMemoPDF(context.Background(), memo)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe empezar con la cabecera PDF")
}

func TestGenerateCreditMemoPDF_SinTiendaNiComentario(t *testing.T) {
	memo := &entity.CreditMemo{
		Number:       "2024/01/000000001",
		CurrencyCode: "USD",
		LocaleCode:   "en_US",
		Channel:      entity.ChannelRef{Code: "WEB", Name: "Web"},
		IssuedAt:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		From:         entity.CustomerBillingData{FullName: "Morty Smith"},
	}

	out, err := pdf.NewMarotoPDFGenerator("Credit Dept").GenerateCreditMemoPDF(context.Background(), memo)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
