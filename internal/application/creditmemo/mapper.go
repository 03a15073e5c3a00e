package creditmemo

import (
	"time"

	"github.com/jhoicas/creditmemo-api/internal/application/dto"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/samber/lo"
)

// ToResponse convierte la nota de crédito en su DTO de salida.
func ToResponse(memo *entity.CreditMemo) *dto.CreditMemoResponse {
	resp := &dto.CreditMemoResponse{
		ID:           memo.ID,
		Number:       memo.Number,
		OrderNumber:  memo.OrderNumber,
		Total:        memo.Total,
		Subtotal:     memo.Subtotal(),
		TaxTotal:     memo.TaxTotal(),
		CurrencyCode: memo.CurrencyCode,
		LocaleCode:   memo.LocaleCode,
		Channel: dto.ChannelResponse{
			Code:  memo.Channel.Code,
			Name:  memo.Channel.Name,
			Color: memo.Channel.Color,
		},
		LineItems: lo.Map(memo.LineItems, func(l entity.LineItem, _ int) dto.CreditMemoLineResponse {
			return dto.CreditMemoLineResponse{
				Label:     l.Label,
				Amount:    l.Amount,
				NetAmount: l.NetAmount(),
				TaxRate:   l.TaxRate,
				TaxAmount: l.TaxAmount,
			}
		}),
		TaxItems: lo.Map(memo.TaxItems, func(t entity.TaxItem, _ int) dto.TaxItemResponse {
			return dto.TaxItemResponse{Label: t.Label, Amount: t.Amount}
		}),
		Comment:  memo.Comment,
		IssuedAt: memo.IssuedAt.Format(time.RFC3339),
		From: dto.CustomerBillingResponse{
			FullName:     memo.From.FullName,
			Street:       memo.From.Street,
			Postcode:     memo.From.Postcode,
			CountryCode:  memo.From.CountryCode,
			City:         memo.From.City,
			Company:      memo.From.Company,
			ProvinceCode: memo.From.ProvinceCode,
			ProvinceName: memo.From.ProvinceName,
		},
	}
	if memo.To != nil {
		resp.To = &dto.ShopBillingResponse{
			Company:     memo.To.Company,
			TaxID:       memo.To.TaxID,
			CountryCode: memo.To.CountryCode,
			Street:      memo.To.Street,
			City:        memo.To.City,
			Postcode:    memo.To.Postcode,
		}
	}
	return resp
}

func toResponses(memos []*entity.CreditMemo) []dto.CreditMemoResponse {
	return lo.Map(memos, func(m *entity.CreditMemo, _ int) dto.CreditMemoResponse {
		return *ToResponse(m)
	})
}
