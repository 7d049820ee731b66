package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaessolutions/docdesk/internal/entity"
	"github.com/jaessolutions/docdesk/internal/sequence"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// SaveQuote inserts or fully replaces the row keyed by the quote number.
// Last write wins, created_at survives re-saves.
func (r *Repository) SaveQuote(ctx context.Context, q entity.Quote) error {
	items, err := json.Marshal(entity.NormalizeQuoteItems(q.Items))
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	sqlQuery :=
		`INSERT INTO quotes
			(quote_number, items, vat_percent, currency, shipping_cost, sales_consultant,
			valid_until, invoice_address, delivery_address, page2_notes, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		ON CONFLICT (quote_number) DO UPDATE SET
			items = excluded.items,
			vat_percent = excluded.vat_percent,
			currency = excluded.currency,
			shipping_cost = excluded.shipping_cost,
			sales_consultant = excluded.sales_consultant,
			valid_until = excluded.valid_until,
			invoice_address = excluded.invoice_address,
			delivery_address = excluded.delivery_address,
			page2_notes = excluded.page2_notes,
			updated_at = now()`

	_, err = r.db.Exec(ctx, sqlQuery,
		q.QuoteNumber,
		items,
		q.VATPercent,
		q.Currency,
		q.ShippingCost,
		q.SalesConsultant,
		q.ValidUntil,
		q.InvoiceAddress,
		q.DeliveryAddress,
		q.Page2Notes,
	)

	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) QuoteByNumber(ctx context.Context, number int64) (entity.Quote, error) {
	sqlQuery :=
		`SELECT quote_number, items, vat_percent, currency, shipping_cost, sales_consultant,
			valid_until, invoice_address, delivery_address, page2_notes, pdf_path, created_at, updated_at
		FROM quotes
		WHERE quote_number = $1`

	var (
		q     entity.Quote
		items []byte
	)

	err := r.db.QueryRow(ctx, sqlQuery, number).Scan(
		&q.QuoteNumber,
		&items,
		&q.VATPercent,
		&q.Currency,
		&q.ShippingCost,
		&q.SalesConsultant,
		&q.ValidUntil,
		&q.InvoiceAddress,
		&q.DeliveryAddress,
		&q.Page2Notes,
		&q.PDFPath,
		&q.CreatedAt,
		&q.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Quote{}, entity.ErrNotFound
		}

		return entity.Quote{}, err
	}

	q.Items = entity.DecodeQuoteItems(items)

	return q, nil
}

func (r *Repository) RecentQuotes(ctx context.Context, limit uint64) ([]entity.QuoteSummary, error) {
	stmt := sq.Select("quote_number", "created_at").
		From("quotes").
		OrderBy("quote_number DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	summaries := make([]entity.QuoteSummary, 0, limit)

	for rows.Next() {
		var s entity.QuoteSummary

		err = rows.Scan(&s.QuoteNumber, &s.CreatedAt)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (r *Repository) SetQuotePDFPath(ctx context.Context, number int64, path string) error {
	return r.setPDFPath(ctx, "quotes", "quote_number", number, path)
}

// SaveInvoice inserts or fully replaces the row keyed by the invoice number.
func (r *Repository) SaveInvoice(ctx context.Context, inv entity.Invoice) error {
	items, err := json.Marshal(entity.NormalizeInvoiceItems(inv.Items))
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	sqlQuery :=
		`INSERT INTO invoices
			(invoice_number, currency, po_number, payment_terms,
			vendor_name, vendor_address, vendor_phone,
			ship_to_name, ship_to_address, ship_to_phone,
			items, comments, vat, shipping, other, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
		ON CONFLICT (invoice_number) DO UPDATE SET
			currency = excluded.currency,
			po_number = excluded.po_number,
			payment_terms = excluded.payment_terms,
			vendor_name = excluded.vendor_name,
			vendor_address = excluded.vendor_address,
			vendor_phone = excluded.vendor_phone,
			ship_to_name = excluded.ship_to_name,
			ship_to_address = excluded.ship_to_address,
			ship_to_phone = excluded.ship_to_phone,
			items = excluded.items,
			comments = excluded.comments,
			vat = excluded.vat,
			shipping = excluded.shipping,
			other = excluded.other,
			updated_at = now()`

	_, err = r.db.Exec(ctx, sqlQuery,
		inv.InvoiceNumber,
		inv.Currency,
		inv.PONumber,
		inv.PaymentTerms,
		inv.Vendor.Name,
		inv.Vendor.Address,
		inv.Vendor.Phone,
		inv.ShipTo.Name,
		inv.ShipTo.Address,
		inv.ShipTo.Phone,
		items,
		inv.Comments,
		inv.VAT,
		inv.Shipping,
		inv.Other,
	)

	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) InvoiceByNumber(ctx context.Context, number int64) (entity.Invoice, error) {
	sqlQuery :=
		`SELECT invoice_number, currency, po_number, payment_terms,
			vendor_name, vendor_address, vendor_phone,
			ship_to_name, ship_to_address, ship_to_phone,
			items, comments, vat, shipping, other, pdf_path, created_at, updated_at
		FROM invoices
		WHERE invoice_number = $1`

	var (
		inv   entity.Invoice
		items []byte
	)

	err := r.db.QueryRow(ctx, sqlQuery, number).Scan(
		&inv.InvoiceNumber,
		&inv.Currency,
		&inv.PONumber,
		&inv.PaymentTerms,
		&inv.Vendor.Name,
		&inv.Vendor.Address,
		&inv.Vendor.Phone,
		&inv.ShipTo.Name,
		&inv.ShipTo.Address,
		&inv.ShipTo.Phone,
		&items,
		&inv.Comments,
		&inv.VAT,
		&inv.Shipping,
		&inv.Other,
		&inv.PDFPath,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	inv.Items = entity.DecodeInvoiceItems(items)

	return inv, nil
}

func (r *Repository) RecentInvoices(ctx context.Context, limit uint64) ([]entity.InvoiceSummary, error) {
	stmt := sq.Select("invoice_number", "created_at").
		From("invoices").
		OrderBy("invoice_number DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	summaries := make([]entity.InvoiceSummary, 0, limit)

	for rows.Next() {
		var s entity.InvoiceSummary

		err = rows.Scan(&s.InvoiceNumber, &s.CreatedAt)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (r *Repository) SetInvoicePDFPath(ctx context.Context, number int64, path string) error {
	return r.setPDFPath(ctx, "invoices", "invoice_number", number, path)
}

func (r *Repository) setPDFPath(ctx context.Context, table, keyColumn string, number int64, path string) error {
	sqlQuery := fmt.Sprintf(`UPDATE %s SET pdf_path = $1 WHERE %s = $2`, table, keyColumn)

	tag, err := r.db.Exec(ctx, sqlQuery, path, number)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// Next allocates the next document number for the class in one atomic
// statement. Concurrent callers always receive distinct numbers, and a
// counter that somehow fell below the class floor is pulled back up.
func (r *Repository) Next(ctx context.Context, class entity.DocClass) (int64, error) {
	floor, err := sequence.Floor(class)
	if err != nil {
		return 0, err
	}

	sqlQuery :=
		`INSERT INTO document_counters (doc_class, last_value)
		VALUES ($1, $2 + 1)
		ON CONFLICT (doc_class) DO UPDATE SET
			last_value = GREATEST(document_counters.last_value + 1, $2 + 1)
		RETURNING last_value`

	var next int64

	err = r.db.QueryRow(ctx, sqlQuery, class, floor).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("allocate %s number: %w", class, err)
	}

	return next, nil
}

// PartyHistory lists vendor / ship-to pairs from the most recent invoices
// so the editor can offer them as fill-in options.
func (r *Repository) PartyHistory(ctx context.Context, limit uint64) ([]entity.PartyHistory, error) {
	stmt := sq.Select(
		"invoice_number",
		"vendor_name", "vendor_address", "vendor_phone",
		"ship_to_name", "ship_to_address", "ship_to_phone",
	).
		From("invoices").
		Where(sq.Or{sq.NotEq{"vendor_name": ""}, sq.NotEq{"ship_to_name": ""}}).
		OrderBy("invoice_number DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	history := make([]entity.PartyHistory, 0, limit)

	for rows.Next() {
		var (
			number int64
			h      entity.PartyHistory
		)

		err = rows.Scan(
			&number,
			&h.Vendor.Name, &h.Vendor.Address, &h.Vendor.Phone,
			&h.ShipTo.Name, &h.ShipTo.Address, &h.ShipTo.Phone,
		)
		if err != nil {
			return nil, err
		}

		h.Label = historyLabel(number, h.Vendor)

		history = append(history, h)
	}

	return history, rows.Err()
}

func historyLabel(number int64, vendor entity.Party) string {
	if line, _, _ := strings.Cut(vendor.Name, "\n"); line != "" {
		return line
	}

	return fmt.Sprintf("Invoice %d", number)
}
