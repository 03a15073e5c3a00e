package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/creditmemo-api/internal/domain"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/internal/domain/repository"
)

var _ repository.CreditMemoRepository = (*CreditMemoRepo)(nil)

// CreditMemoRepo implementación de CreditMemoRepository (usable con pool o tx).
// Create escribe cabecera, líneas y tax items: llamarlo dentro de TxRunner.RunCreditMemo.
type CreditMemoRepo struct {
	q Querier
}

// NewCreditMemoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditMemoRepository(q Querier) *CreditMemoRepo {
	return &CreditMemoRepo{q: q}
}

const selectCreditMemo = `
	SELECT id, number, order_id, order_number, total, currency_code, locale_code,
	       channel_code, channel_name, channel_color, comment, issued_at,
	       from_full_name, from_street, from_postcode, from_country_code, from_city,
	       from_company, from_province_code, from_province_name,
	       to_company, to_tax_id, to_country_code, to_street, to_city, to_postcode
	FROM credit_memos`

// Create persiste la nota de crédito completa.
func (r *CreditMemoRepo) Create(ctx context.Context, memo *entity.CreditMemo) error {
	var toCompany, toTaxID, toCountry, toStreet, toCity, toPostcode *string
	if memo.To != nil {
		toCompany = &memo.To.Company
		toTaxID = &memo.To.TaxID
		toCountry = &memo.To.CountryCode
		toStreet = &memo.To.Street
		toCity = &memo.To.City
		toPostcode = &memo.To.Postcode
	}
	const query = `
		INSERT INTO credit_memos (
			id, number, order_id, order_number, total, currency_code, locale_code,
			channel_code, channel_name, channel_color, comment, issued_at,
			from_full_name, from_street, from_postcode, from_country_code, from_city,
			from_company, from_province_code, from_province_name,
			to_company, to_tax_id, to_country_code, to_street, to_city, to_postcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.q.Exec(ctx, query,
		memo.ID, memo.Number, memo.OrderID, memo.OrderNumber, memo.Total,
		memo.CurrencyCode, memo.LocaleCode,
		memo.Channel.Code, memo.Channel.Name, memo.Channel.Color,
		memo.Comment, memo.IssuedAt,
		memo.From.FullName, memo.From.Street, memo.From.Postcode, memo.From.CountryCode, memo.From.City,
		nullIfEmpty(memo.From.Company), nullIfEmpty(memo.From.ProvinceCode), nullIfEmpty(memo.From.ProvinceName),
		toCompany, toTaxID, toCountry, toStreet, toCity, toPostcode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: nota de crédito %s ya existe: %v", domain.ErrDuplicate, memo.Number, err)
		}
		return fmt.Errorf("insert credit memo: %w", err)
	}

	const lineQuery = `
		INSERT INTO credit_memo_line_items (credit_memo_id, position, label, amount, tax_rate, tax_amount)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, line := range memo.LineItems {
		if _, err := r.q.Exec(ctx, lineQuery, memo.ID, i, line.Label, line.Amount, line.TaxRate, line.TaxAmount); err != nil {
			return fmt.Errorf("insert credit memo line item: %w", err)
		}
	}

	const taxQuery = `
		INSERT INTO credit_memo_tax_items (credit_memo_id, position, label, amount)
		VALUES ($1, $2, $3, $4)`
	for i, tax := range memo.TaxItems {
		if _, err := r.q.Exec(ctx, taxQuery, memo.ID, i, tax.Label, tax.Amount); err != nil {
			return fmt.Errorf("insert credit memo tax item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la nota de crédito con líneas y tax items. nil, nil si no existe.
func (r *CreditMemoRepo) GetByID(ctx context.Context, id string) (*entity.CreditMemo, error) {
	memo, err := scanCreditMemo(r.q.QueryRow(ctx, selectCreditMemo+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit memo: %w", err)
	}
	if err := r.loadChildren(ctx, memo); err != nil {
		return nil, err
	}
	return memo, nil
}

// ListByOrderNumber lista las notas de un pedido en orden de emisión.
func (r *CreditMemoRepo) ListByOrderNumber(ctx context.Context, orderNumber string) ([]*entity.CreditMemo, error) {
	return r.list(ctx, selectCreditMemo+` WHERE order_number = $1 ORDER BY issued_at, number`, orderNumber)
}

// List listado paginado (más recientes primero) y total de registros para el filtro.
func (r *CreditMemoRepo) List(ctx context.Context, filter repository.CreditMemoFilter) ([]*entity.CreditMemo, int, error) {
	var total int
	const countQuery = `SELECT count(*) FROM credit_memos WHERE ($1 = '' OR channel_code = $1)`
	if err := r.q.QueryRow(ctx, countQuery, filter.ChannelCode).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count credit memos: %w", err)
	}
	memos, err := r.list(ctx,
		selectCreditMemo+` WHERE ($1 = '' OR channel_code = $1) ORDER BY issued_at DESC, number DESC LIMIT $2 OFFSET $3`,
		filter.ChannelCode, filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	return memos, total, nil
}

func (r *CreditMemoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.CreditMemo, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credit memos: %w", err)
	}
	var list []*entity.CreditMemo
	for rows.Next() {
		memo, err := scanCreditMemo(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan credit memo: %w", err)
		}
		list = append(list, memo)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Las líneas se cargan después de cerrar rows: la misma conexión/tx no admite dos consultas abiertas.
	for _, memo := range list {
		if err := r.loadChildren(ctx, memo); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *CreditMemoRepo) loadChildren(ctx context.Context, memo *entity.CreditMemo) error {
	const lineQuery = `
		SELECT label, amount, tax_rate, tax_amount
		FROM credit_memo_line_items WHERE credit_memo_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, lineQuery, memo.ID)
	if err != nil {
		return fmt.Errorf("list credit memo line items: %w", err)
	}
	memo.LineItems = make([]entity.LineItem, 0)
	for rows.Next() {
		var line entity.LineItem
		if err := rows.Scan(&line.Label, &line.Amount, &line.TaxRate, &line.TaxAmount); err != nil {
			rows.Close()
			return fmt.Errorf("scan line item: %w", err)
		}
		memo.LineItems = append(memo.LineItems, line)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	const taxQuery = `
		SELECT label, amount
		FROM credit_memo_tax_items WHERE credit_memo_id = $1 ORDER BY position`
	rows, err = r.q.Query(ctx, taxQuery, memo.ID)
	if err != nil {
		return fmt.Errorf("list credit memo tax items: %w", err)
	}
	defer rows.Close()
	memo.TaxItems = make([]entity.TaxItem, 0)
	for rows.Next() {
		var tax entity.TaxItem
		if err := rows.Scan(&tax.Label, &tax.Amount); err != nil {
			return fmt.Errorf("scan tax item: %w", err)
		}
		memo.TaxItems = append(memo.TaxItems, tax)
	}
	return rows.Err()
}

func scanCreditMemo(row pgxScanner) (*entity.CreditMemo, error) {
	var (
		m                                               entity.CreditMemo
		fromCompany, fromProvinceCode, fromProvinceName *string
		toCompany, toTaxID, toCountry, toStreet, toCity *string
		toPostcode                                      *string
	)
	err := row.Scan(
		&m.ID, &m.Number, &m.OrderID, &m.OrderNumber, &m.Total, &m.CurrencyCode, &m.LocaleCode,
		&m.Channel.Code, &m.Channel.Name, &m.Channel.Color, &m.Comment, &m.IssuedAt,
		&m.From.FullName, &m.From.Street, &m.From.Postcode, &m.From.CountryCode, &m.From.City,
		&fromCompany, &fromProvinceCode, &fromProvinceName,
		&toCompany, &toTaxID, &toCountry, &toStreet, &toCity, &toPostcode,
	)
	if err != nil {
		return nil, err
	}
	m.From.Company = derefStr(fromCompany)
	m.From.ProvinceCode = derefStr(fromProvinceCode)
	m.From.ProvinceName = derefStr(fromProvinceName)
	if toCompany != nil {
		m.To = &entity.ShopBillingData{
			Company:     *toCompany,
			TaxID:       derefStr(toTaxID),
			CountryCode: derefStr(toCountry),
			Street:      derefStr(toStreet),
			City:        derefStr(toCity),
			Postcode:    derefStr(toPostcode),
		}
	}
	return &m, nil
}
