package creditmemo_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	err    error
	calls  int
}

func (f *fakeOrderRepo) GetByNumber(_ context.Context, number string) (*entity.Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.orders[number], nil
}

type fakeUnitRepo struct {
	units map[string]*entity.OrderItemUnit
	err   error
}

func (f *fakeUnitRepo) GetByID(_ context.Context, id string) (*entity.OrderItemUnit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.units[id], nil
}

type fakeShipmentRepo struct {
	shipments map[string]*entity.Shipment
}

func (f *fakeShipmentRepo) GetByID(_ context.Context, id string) (*entity.Shipment, error) {
	return f.shipments[id], nil
}

type fakeSequenceRepo struct {
	next int64
	err  error
}

func (f *fakeSequenceRepo) Next(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	idx := f.next
	f.next++
	return idx, nil
}

// fakeLineItemGenerator devuelve una línea fija por unidad y registra el orden de llamadas.
type fakeLineItemGenerator struct {
	lines    map[string]entity.LineItem
	err      error
	seen     []string
	orderIDs []string
}

func (f *fakeLineItemGenerator) Generate(_ context.Context, orderID, unitID string, amount int64) (*entity.LineItem, error) {
	f.seen = append(f.seen, unitID)
	f.orderIDs = append(f.orderIDs, orderID)
	if f.err != nil {
		return nil, f.err
	}
	line, ok := f.lines[unitID]
	if !ok {
		return nil, errors.New("unidad desconocida: " + unitID)
	}
	line.Amount = amount
	return &line, nil
}

type fakeNumberGenerator struct {
	number string
	err    error
	calls  int
}

func (f *fakeNumberGenerator) Generate(_ context.Context) (string, error) {
	f.calls++
	return f.number, f.err
}

type fakeIdentifierGenerator struct {
	id    string
	calls int
}

func (f *fakeIdentifierGenerator) Generate() string {
	f.calls++
	return f.id
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// memoryCreditMemoRepo repositorio en memoria que conserva el orden de inserción.
type memoryCreditMemoRepo struct {
	memos     []*entity.CreditMemo
	createErr error
	getErr    error
	lastList  repository.CreditMemoFilter
}

func (r *memoryCreditMemoRepo) Create(_ context.Context, memo *entity.CreditMemo) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.memos = append(r.memos, memo)
	return nil
}

func (r *memoryCreditMemoRepo) GetByID(_ context.Context, id string) (*entity.CreditMemo, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, m := range r.memos {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memoryCreditMemoRepo) ListByOrderNumber(_ context.Context, orderNumber string) ([]*entity.CreditMemo, error) {
	var out []*entity.CreditMemo
	for _, m := range r.memos {
		if m.OrderNumber == orderNumber {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memoryCreditMemoRepo) List(_ context.Context, filter repository.CreditMemoFilter) ([]*entity.CreditMemo, int, error) {
	r.lastList = filter
	var matched []*entity.CreditMemo
	for _, m := range r.memos {
		if filter.ChannelCode == "" || m.Channel.Code == filter.ChannelCode {
			matched = append(matched, m)
		}
	}
	total := len(matched)
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

// fakeTxRunner ejecuta fn con el repositorio en memoria; err simula un fallo de commit.
type fakeTxRunner struct {
	repo  *memoryCreditMemoRepo
	err   error
	calls int
}

func (f *fakeTxRunner) RunCreditMemo(_ context.Context, fn func(creditMemoRepo repository.CreditMemoRepository) error) error {
	f.calls++
	if err := fn(f.repo); err != nil {
		return err
	}
	return f.err
}

type fakePDFGenerator struct {
	err error
}

func (f fakePDFGenerator) GenerateCreditMemoPDF(_ context.Context, memo *entity.CreditMemo) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-" + memo.Number), nil
}

type fakeXMLBuilder struct {
	buildErr error
}

func (f fakeXMLBuilder) Build(memo *entity.CreditMemo) ([]byte, error) {
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	return []byte("<CreditNote>" + memo.Number + "</CreditNote>"), nil
}

func (f fakeXMLBuilder) Digest(_ []byte) (string, error) {
	return "3f1c0d", nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos de ejemplo: pedido del canal WEB-US con dos productos y un envío
// ──────────────────────────────────────────────────────────────────────────────

const (
	sampleOrderNumber = "000666"
	sampleOrderID     = "ord-1"
	sampleNumber      = "2018/07/00001111"
	sampleID          = "7903c83a-4c5e-4bcf-81d8-9dc304c6a353"
	sampleTaxLabel    = "VAT (10%)"
)

var sampleIssuedAt = time.Date(2018, 7, 12, 10, 30, 0, 0, time.UTC)

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:           sampleOrderID,
		Number:       sampleOrderNumber,
		CurrencyCode: "GBP",
		LocaleCode:   "en_US",
		Channel: &entity.Channel{
			ID:    "ch-1",
			Code:  "WEB-US",
			Name:  "United States",
			Color: "Linen",
			BillingData: &entity.ChannelBillingData{
				Company:     "Needful Things",
				TaxID:       "000222",
				CountryCode: "US",
				Street:      "Main St. 123",
				City:        "New York",
				Postcode:    "90222",
			},
		},
		BillingAddress: &entity.Address{
			FirstName:   "Rick",
			LastName:    "Sanchez",
			Company:     "Curse Purge Plus!",
			Street:      "Universe St. 444",
			City:        "Los Angeles",
			Postcode:    "000333",
			CountryCode: "US",
		},
	}
}

func taxLabel() *string {
	l := sampleTaxLabel
	return &l
}
