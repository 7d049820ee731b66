package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaessolutions/docdesk/internal/entity"
)

func TestParty_EditorText(t *testing.T) {
	t.Parallel()

	p := entity.Party{Name: "ACME Ltd", Address: "3 Side Road", Phone: "555-0101"}
	require.Equal(t, "ACME Ltd\n3 Side Road\n555-0101", p.EditorText())

	// Empty parts are skipped, not rendered as blank lines.
	p = entity.Party{Name: "ACME Ltd", Phone: "555-0101"}
	require.Equal(t, "ACME Ltd\n555-0101", p.EditorText())

	require.Empty(t, entity.Party{}.EditorText())
}

func TestParty_SetEditorText(t *testing.T) {
	t.Parallel()

	p := entity.Party{Name: "ACME Ltd", Address: "3 Side Road", Phone: "555-0101"}
	p.SetEditorText("New Co\n9 Other Road")

	// The whole text lands in Name, the split fields are gone. A re-save
	// after editing collapses the structured columns.
	require.Equal(t, entity.Party{Name: "New Co\n9 Other Road"}, p)
	require.Equal(t, "New Co\n9 Other Road", p.EditorText())
}

func TestIsValidPaymentTerms(t *testing.T) {
	t.Parallel()

	for _, terms := range []string{
		entity.PaymentTerms30Days,
		entity.PaymentTerms60Days,
		entity.PaymentTerms90Days,
	} {
		require.True(t, entity.IsValidPaymentTerms(terms))
	}

	require.False(t, entity.IsValidPaymentTerms("45 days"))
	require.False(t, entity.IsValidPaymentTerms(""))
}

func TestPDFNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Quotation-7001.pdf", entity.QuotePDFName(7001))
	require.Equal(t, "Invoice-9001.pdf", entity.InvoicePDFName(9001))
}
