package entity

// QuoteCurrency is the three-currency set of the quotation editor.
type QuoteCurrency string

const (
	QuoteCurrencyGBP QuoteCurrency = "GBP"
	QuoteCurrencyUSD QuoteCurrency = "USD"
	QuoteCurrencyAED QuoteCurrency = "AED"
)

func (c QuoteCurrency) IsValid() bool {
	switch c {
	case QuoteCurrencyGBP, QuoteCurrencyUSD, QuoteCurrencyAED:
		return true
	default:
		return false
	}
}

func (c QuoteCurrency) Symbol() string {
	switch c {
	case QuoteCurrencyGBP:
		return "£"
	case QuoteCurrencyUSD:
		return "$"
	case QuoteCurrencyAED:
		return "د.إ"
	default:
		return string(c)
	}
}

// InvoiceCurrency is the invoice editor's own three-currency set.
type InvoiceCurrency string

const (
	InvoiceCurrencyUSD InvoiceCurrency = "USD"
	InvoiceCurrencyGBP InvoiceCurrency = "GBP"
	InvoiceCurrencyINR InvoiceCurrency = "INR"
)

func (c InvoiceCurrency) IsValid() bool {
	switch c {
	case InvoiceCurrencyUSD, InvoiceCurrencyGBP, InvoiceCurrencyINR:
		return true
	default:
		return false
	}
}

func (c InvoiceCurrency) Symbol() string {
	switch c {
	case InvoiceCurrencyUSD:
		return "$"
	case InvoiceCurrencyGBP:
		return "£"
	case InvoiceCurrencyINR:
		return "₹"
	default:
		return string(c)
	}
}
