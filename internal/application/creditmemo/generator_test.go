package creditmemo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/creditmemo-api/internal/application/creditmemo"
	"github.com/jhoicas/creditmemo-api/internal/domain"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
)

type generatorFixture struct {
	orders      *fakeOrderRepo
	unitLines   *fakeLineItemGenerator
	shipLines   *fakeLineItemGenerator
	numbers     *fakeNumberGenerator
	identifiers *fakeIdentifierGenerator
	generator   *creditmemo.CreditMemoGenerator
}

func newGeneratorFixture() *generatorFixture {
	f := &generatorFixture{
		orders: &fakeOrderRepo{orders: map[string]*entity.Order{sampleOrderNumber: sampleOrder()}},
		unitLines: &fakeLineItemGenerator{lines: map[string]entity.LineItem{
			"unit-1": {Label: "Portal gun", TaxRate: taxLabel(), TaxAmount: 50},
			"unit-2": {Label: "Broken Leg Serum", TaxRate: taxLabel(), TaxAmount: 50},
		}},
		shipLines: &fakeLineItemGenerator{lines: map[string]entity.LineItem{
			"ship-1": {Label: "Galaxy post"},
		}},
		numbers:     &fakeNumberGenerator{number: sampleNumber},
		identifiers: &fakeIdentifierGenerator{id: sampleID},
	}
	f.generator = creditmemo.NewCreditMemoGenerator(
		f.orders, f.unitLines, f.shipLines,
		creditmemo.NewTaxItemsGenerator(),
		f.numbers, fixedClock{now: sampleIssuedAt}, f.identifiers,
	)
	return f
}

func (f *generatorFixture) generate(t *testing.T) *entity.CreditMemo {
	t.Helper()
	memo, err := f.generator.Generate(context.Background(), sampleOrderNumber, 1400,
		[]entity.OrderItemUnitRefund{{UnitID: "unit-1", Amount: 500}, {UnitID: "unit-2", Amount: 500}},
		[]entity.ShipmentRefund{{UnitID: "ship-1", Amount: 400}},
		"Comment",
	)
	require.NoError(t, err)
	require.NotNil(t, memo)
	return memo
}

func TestGenerate_NotaCompleta(t *testing.T) {
	memo := newGeneratorFixture().generate(t)

	assert.Equal(t, sampleID, memo.ID)
	assert.Equal(t, sampleNumber, memo.Number)
	assert.Equal(t, "ord-1", memo.OrderID)
	assert.Equal(t, sampleOrderNumber, memo.OrderNumber)
	assert.Equal(t, int64(1400), memo.Total)
	assert.Equal(t, "GBP", memo.CurrencyCode)
	assert.Equal(t, "en_US", memo.LocaleCode)
	assert.Equal(t, entity.ChannelRef{Code: "WEB-US", Name: "United States", Color: "Linen"}, memo.Channel)
	assert.Equal(t, "Comment", memo.Comment)
	assert.Equal(t, sampleIssuedAt, memo.IssuedAt)

	require.Len(t, memo.LineItems, 3)
	assert.Equal(t, entity.LineItem{Label: "Portal gun", Amount: 500, TaxRate: taxLabel(), TaxAmount: 50}, memo.LineItems[0])
	assert.Equal(t, entity.LineItem{Label: "Broken Leg Serum", Amount: 500, TaxRate: taxLabel(), TaxAmount: 50}, memo.LineItems[1])
	assert.Equal(t, entity.LineItem{Label: "Galaxy post", Amount: 400}, memo.LineItems[2])

	assert.Equal(t, []entity.TaxItem{{Label: sampleTaxLabel, Amount: 100}}, memo.TaxItems)

	assert.Equal(t, entity.CustomerBillingData{
		FullName:    "Rick Sanchez",
		Street:      "Universe St. 444",
		Postcode:    "000333",
		CountryCode: "US",
		City:        "Los Angeles",
		Company:     "Curse Purge Plus!",
	}, memo.From)
	require.NotNil(t, memo.To)
	assert.Equal(t, entity.ShopBillingData{
		Company:     "Needful Things",
		TaxID:       "000222",
		CountryCode: "US",
		Street:      "Main St. 123",
		City:        "New York",
		Postcode:    "90222",
	}, *memo.To)

	assert.Equal(t, int64(1300), memo.Subtotal())
	assert.Equal(t, int64(100), memo.TaxTotal())
}

func TestGenerate_UnidadesAntesQueEnvios(t *testing.T) {
	f := newGeneratorFixture()
	memo, err := f.generator.Generate(context.Background(), sampleOrderNumber, 900,
		[]entity.OrderItemUnitRefund{{UnitID: "unit-2", Amount: 500}},
		[]entity.ShipmentRefund{{UnitID: "ship-1", Amount: 400}},
		"",
	)
	require.NoError(t, err)
	require.Len(t, memo.LineItems, 2)
	assert.Equal(t, "Broken Leg Serum", memo.LineItems[0].Label)
	assert.Equal(t, "Galaxy post", memo.LineItems[1].Label)
	assert.Equal(t, []string{"unit-2"}, f.unitLines.seen)
	assert.Equal(t, []string{"ship-1"}, f.shipLines.seen)
	assert.Equal(t, []string{sampleOrderID}, f.unitLines.orderIDs)
	assert.Equal(t, []string{sampleOrderID}, f.shipLines.orderIDs)
}

func TestGenerate_SinReembolsos(t *testing.T) {
	f := newGeneratorFixture()
	memo, err := f.generator.Generate(context.Background(), sampleOrderNumber, 0, nil, nil, "")
	require.NoError(t, err)
	assert.Empty(t, memo.LineItems)
	assert.Empty(t, memo.TaxItems)
	assert.Equal(t, sampleNumber, memo.Number)
}

func TestGenerate_PedidoInexistente_NoConsumeConsecutivo(t *testing.T) {
	f := newGeneratorFixture()
	memo, err := f.generator.Generate(context.Background(), "999", 100,
		[]entity.OrderItemUnitRefund{{UnitID: "unit-1", Amount: 100}}, nil, "")

	assert.Nil(t, memo)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Equal(t, 0, f.numbers.calls, "no debe consumir consecutivo")
	assert.Equal(t, 0, f.identifiers.calls, "no debe generar identificador")
	assert.Empty(t, f.unitLines.seen)
}

func TestGenerate_PedidoSinDireccion(t *testing.T) {
	f := newGeneratorFixture()
	f.orders.orders[sampleOrderNumber].BillingAddress = nil

	_, err := f.generator.Generate(context.Background(), sampleOrderNumber, 0, nil, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.numbers.calls)
}

func TestGenerate_ErrorDeRepositorioDePedidos(t *testing.T) {
	f := newGeneratorFixture()
	boom := errors.New("db caída")
	f.orders.err = boom

	_, err := f.generator.Generate(context.Background(), sampleOrderNumber, 0, nil, nil, "")
	assert.ErrorIs(t, err, boom)
}

func TestGenerate_ErrorDeLinea_SePropagaSinCambios(t *testing.T) {
	f := newGeneratorFixture()
	notFound := errors.Join(domain.ErrNotFound, errors.New("unidad unit-x"))
	f.unitLines.err = notFound

	_, err := f.generator.Generate(context.Background(), sampleOrderNumber, 100,
		[]entity.OrderItemUnitRefund{{UnitID: "unit-x", Amount: 100}}, nil, "")
	assert.Same(t, notFound, err)
	assert.Equal(t, 0, f.numbers.calls)
}

func TestGenerate_UnidadDeOtroPedido_NoConsumeConsecutivo(t *testing.T) {
	orders := &fakeOrderRepo{orders: map[string]*entity.Order{sampleOrderNumber: sampleOrder()}}
	numbers := &fakeNumberGenerator{number: sampleNumber}
	identifiers := &fakeIdentifierGenerator{id: sampleID}
	g := creditmemo.NewCreditMemoGenerator(
		orders,
		creditmemo.NewOrderItemUnitLineItemGenerator(unitRepoWith()),
		creditmemo.NewShipmentLineItemGenerator(shipmentRepoWith()),
		creditmemo.NewTaxItemsGenerator(),
		numbers, fixedClock{now: sampleIssuedAt}, identifiers,
	)

	memo, err := g.Generate(context.Background(), sampleOrderNumber, 9999,
		[]entity.OrderItemUnitRefund{{UnitID: "unit-1", Amount: 500}, {UnitID: "unit-ajena", Amount: 9999}}, nil, "")
	assert.Nil(t, memo)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	memo, err = g.Generate(context.Background(), sampleOrderNumber, 300,
		nil, []entity.ShipmentRefund{{UnitID: "ship-ajeno", Amount: 300}}, "")
	assert.Nil(t, memo)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 0, numbers.calls, "no debe consumir consecutivo")
	assert.Equal(t, 0, identifiers.calls)
}

func TestGenerate_ErrorDeConsecutivo(t *testing.T) {
	f := newGeneratorFixture()
	f.numbers.err = errors.New("secuencia bloqueada")

	_, err := f.generator.Generate(context.Background(), sampleOrderNumber, 0, nil, nil, "")
	assert.ErrorIs(t, err, f.numbers.err)
	assert.Equal(t, 0, f.identifiers.calls)
}

func TestGenerate_SnapshotsIndependientesDelPedido(t *testing.T) {
	f := newGeneratorFixture()
	memo := f.generate(t)

	order := f.orders.orders[sampleOrderNumber]
	order.BillingAddress.Street = "Otra calle 1"
	order.BillingAddress.FirstName = "Morty"
	order.Channel.BillingData.Company = "Otra tienda"
	order.Channel.Name = "Otro canal"

	assert.Equal(t, "Universe St. 444", memo.From.Street)
	assert.Equal(t, "Rick Sanchez", memo.From.FullName)
	assert.Equal(t, "Needful Things", memo.To.Company)
	assert.Equal(t, "United States", memo.Channel.Name)
}

func TestGenerate_Determinista(t *testing.T) {
	first := newGeneratorFixture().generate(t)
	second := newGeneratorFixture().generate(t)
	assert.Equal(t, first, second)
}

func TestGenerate_CanalSinDatosDeFacturacion(t *testing.T) {
	f := newGeneratorFixture()
	f.orders.orders[sampleOrderNumber].Channel.BillingData = nil

	memo := f.generate(t)
	assert.Nil(t, memo.To)
}
