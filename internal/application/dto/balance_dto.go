package dto

// BalanceRow es una fila del reporte de balances: producto y ubicación
// resueltos a sus registros completos más el neto acumulado (nunca cero en la
// vista plana).
type BalanceRow struct {
	Product  ProductResponse  `json:"product"`
	Location LocationResponse `json:"location"`
	Qty      int64            `json:"qty"`
}

// BalanceReportResponse reporte plano de balances con supresión de ceros.
type BalanceReportResponse struct {
	Items []BalanceRow `json:"items"`
}

// RawBalanceResponse forma cruda del balance: product_id → location_id → neto.
// A diferencia del reporte plano, conserva las entradas en cero.
type RawBalanceResponse map[string]map[string]int64
