package dto

const (
	CurrencyCZK = "czk"
	CurrencyEUR = "eur"
)

// GetRatesResponse carries the TWD rates for both trip currencies. When the
// feed is unreachable the reserve rates are served and Fallback is set.
type GetRatesResponse struct {
	CZK      float64 `json:"czk"`
	EUR      float64 `json:"eur"`
	Status   string  `json:"status"`
	Fallback bool    `json:"fallback"`
}

type ConvertRequest struct {
	Amount   float64 `json:"amount"   validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,oneof=czk eur"`
}

type ConvertResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
	Result   float64 `json:"result"`
	Status   string  `json:"status"`
}
