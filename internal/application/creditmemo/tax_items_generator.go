package creditmemo

import "github.com/jhoicas/creditmemo-api/internal/domain/entity"

// TaxItemsGenerator agrupa el impuesto de las líneas por etiqueta de tasa.
type TaxItemsGenerator struct{}

// NewTaxItemsGenerator crea el servicio.
func NewTaxItemsGenerator() *TaxItemsGenerator {
	return &TaxItemsGenerator{}
}

// Generate devuelve un TaxItem por tasa distinta, en orden de primera aparición.
// Las líneas sin tasa no aportan nada.
func (g *TaxItemsGenerator) Generate(lines []entity.LineItem) []entity.TaxItem {
	items := make([]entity.TaxItem, 0)
	positions := make(map[string]int)
	for _, line := range lines {
		if line.TaxRate == nil {
			continue
		}
		label := *line.TaxRate
		if i, ok := positions[label]; ok {
			items[i].Amount += line.TaxAmount
			continue
		}
		positions[label] = len(items)
		items = append(items, entity.TaxItem{Label: label, Amount: line.TaxAmount})
	}
	return items
}
