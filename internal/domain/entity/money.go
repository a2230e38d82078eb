package entity

import "github.com/shopspring/decimal"

func init() {
	// La API del taller envía y espera precios como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true
}
