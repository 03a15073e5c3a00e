// Package ubl exporta la nota de crédito como documento UBL 2.1 CreditNote.
package ubl

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/creditmemo-api/internal/application/creditmemo"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/pkg/money"
)

// Namespaces oficiales UBL 2.1.
const (
	NsCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
	NsCac        = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc        = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	ublVersion = "2.1"
)

var _ creditmemo.CreditMemoXMLBuilder = (*Builder)(nil)

// Builder construye el XML CreditNote con etree y calcula su digest sobre la forma C14N.
type Builder struct{}

// NewBuilder crea el builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build genera el []byte del CreditNote. Los importes van en unidades mayores con currencyID.
func (b *Builder) Build(memo *entity.CreditMemo) ([]byte, error) {
	if memo == nil {
		return nil, fmt.Errorf("ubl: nota de crédito nil")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("CreditNote")
	root.CreateAttr("xmlns", NsCreditNote)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	amt := amounter{currency: memo.CurrencyCode}

	cbc(root, "UBLVersionID", ublVersion)
	cbc(root, "ID", memo.Number)
	cbc(root, "UUID", memo.ID)
	cbc(root, "IssueDate", memo.IssuedAt.Format("2006-01-02"))
	cbc(root, "IssueTime", memo.IssuedAt.Format("15:04:05"))
	if memo.Comment != "" {
		cbc(root, "Note", memo.Comment)
	}
	cbc(root, "DocumentCurrencyCode", memo.CurrencyCode)

	// ── Referencia al pedido ────────────────────────────────────────────────
	ref := root.CreateElement("cac:BillingReference").CreateElement("cac:InvoiceDocumentReference")
	cbc(ref, "ID", memo.OrderNumber)

	// ── Partes: proveedor (tienda) y cliente ────────────────────────────────
	if memo.To != nil {
		party := root.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")
		writeAddress(party, memo.To.Street, memo.To.City, memo.To.Postcode, "", memo.To.CountryCode)
		if memo.To.TaxID != "" {
			scheme := party.CreateElement("cac:PartyTaxScheme")
			cbc(scheme, "CompanyID", memo.To.TaxID)
			cbc(scheme.CreateElement("cac:TaxScheme"), "ID", "VAT")
		}
		cbc(party.CreateElement("cac:PartyLegalEntity"), "RegistrationName", memo.To.Company)
	}

	customer := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	if memo.From.Company != "" {
		cbc(customer.CreateElement("cac:PartyName"), "Name", memo.From.Company)
	}
	writeAddress(customer, memo.From.Street, memo.From.City, memo.From.Postcode,
		nonEmpty(memo.From.ProvinceName, memo.From.ProvinceCode), memo.From.CountryCode)
	cbc(customer.CreateElement("cac:PartyLegalEntity"), "RegistrationName", memo.From.FullName)

	// ── Impuestos por tasa ──────────────────────────────────────────────────
	taxTotal := root.CreateElement("cac:TaxTotal")
	amt.write(taxTotal, "TaxAmount", memo.TaxTotal())
	for _, t := range memo.TaxItems {
		sub := taxTotal.CreateElement("cac:TaxSubtotal")
		amt.write(sub, "TaxAmount", t.Amount)
		category := sub.CreateElement("cac:TaxCategory")
		cbc(category, "Name", t.Label)
		cbc(category.CreateElement("cac:TaxScheme"), "ID", "VAT")
	}

	// ── Totales ─────────────────────────────────────────────────────────────
	totals := root.CreateElement("cac:LegalMonetaryTotal")
	amt.write(totals, "LineExtensionAmount", memo.Subtotal())
	amt.write(totals, "TaxExclusiveAmount", memo.Subtotal())
	amt.write(totals, "TaxInclusiveAmount", memo.LinesTotal())
	amt.write(totals, "PayableAmount", memo.Total)

	// ── Líneas ──────────────────────────────────────────────────────────────
	for i, l := range memo.LineItems {
		line := root.CreateElement("cac:CreditNoteLine")
		cbc(line, "ID", strconv.Itoa(i+1))
		qty := line.CreateElement("cbc:CreditedQuantity")
		qty.CreateAttr("unitCode", "C62")
		qty.SetText("1")
		amt.write(line, "LineExtensionAmount", l.NetAmount())
		lineTax := line.CreateElement("cac:TaxTotal")
		amt.write(lineTax, "TaxAmount", l.TaxAmount)
		item := line.CreateElement("cac:Item")
		cbc(item, "Name", l.Label)
		if l.TaxRate != nil {
			category := item.CreateElement("cac:ClassifiedTaxCategory")
			cbc(category, "Name", *l.TaxRate)
			cbc(category.CreateElement("cac:TaxScheme"), "ID", "VAT")
		}
		amt.write(line.CreateElement("cac:Price"), "PriceAmount", l.NetAmount())
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("ubl: serializar XML: %w", err)
	}
	return out, nil
}

// Digest hex SHA-256 de la forma canónica (C14N 1.0) del elemento raíz.
func (b *Builder) Digest(xmlBytes []byte) (string, error) {
	if len(xmlBytes) == 0 {
		return "", fmt.Errorf("ubl: XML vacío")
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlBytes); err != nil {
		return "", fmt.Errorf("ubl: parsear XML: %w", err)
	}
	if doc.Root() == nil {
		return "", fmt.Errorf("ubl: XML sin elemento raíz")
	}
	// Solo el elemento raíz: la declaración XML no forma parte de la forma canónica.
	rootDoc := etree.NewDocument()
	rootDoc.SetRoot(doc.Root().Copy())
	rootBytes, err := rootDoc.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("ubl: serializar raíz: %w", err)
	}
	canonical, err := canonicalizeXML(rootBytes)
	if err != nil {
		return "", fmt.Errorf("ubl: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

// ── helpers ───────────────────────────────────────────────────────────────────

type amounter struct {
	currency string
}

func (a amounter) write(parent *etree.Element, name string, v int64) {
	d := money.Decimal(v, a.currency)
	el := parent.CreateElement("cbc:" + name)
	el.CreateAttr("currencyID", a.currency)
	el.SetText(d.StringFixed(-d.Exponent()))
}

func cbc(parent *etree.Element, name, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + name)
	el.SetText(value)
	return el
}

func writeAddress(party *etree.Element, street, city, postcode, subentity, country string) {
	addr := party.CreateElement("cac:PostalAddress")
	cbc(addr, "StreetName", street)
	cbc(addr, "CityName", city)
	cbc(addr, "PostalZone", postcode)
	if subentity != "" {
		cbc(addr, "CountrySubentity", subentity)
	}
	cbc(addr.CreateElement("cac:Country"), "IdentificationCode", country)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
