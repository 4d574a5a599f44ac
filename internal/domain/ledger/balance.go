// Package ledger implementa el cálculo de balances sobre el libro de
// movimientos (servicio de dominio, sin I/O).
//
// El balance de un producto en una ubicación es la suma con signo de todos
// los movimientos del libro: +Qty donde ToLocation es la ubicación, -Qty
// donde FromLocation es la ubicación. El resultado es independiente del
// orden de los movimientos y se recalcula completo en cada llamada; este
// recálculo desde cero es el oráculo de corrección del sistema.
package ledger

import (
	"sort"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Entry es un balance neto distinto de cero de un producto en una ubicación.
type Entry struct {
	ProductID  string
	LocationID string
	Qty        int64
}

// Balances pliega el libro completo en el mapa producto → ubicación → neto.
//
// Un movimiento sin FromLocation ni ToLocation no aporta nada. Un movimiento
// con ambos acredita ToLocation y debita FromLocation (traslado interno); si
// ambos son la misma ubicación el neto es cero pero la entrada existe en el
// mapa. Las entradas en cero se conservan aquí: la supresión de ceros es
// responsabilidad de Flatten.
func Balances(movements []*entity.Movement) map[string]map[string]int64 {
	balances := make(map[string]map[string]int64)
	for _, m := range movements {
		if m.ToLocation == "" && m.FromLocation == "" {
			continue
		}
		locs := balances[m.ProductID]
		if locs == nil {
			locs = make(map[string]int64)
			balances[m.ProductID] = locs
		}
		if m.ToLocation != "" {
			locs[m.ToLocation] += m.Qty
		}
		if m.FromLocation != "" {
			locs[m.FromLocation] -= m.Qty
		}
	}
	return balances
}

// Flatten convierte el mapa anidado en una lista plana omitiendo las entradas
// cuyo neto acumulado es exactamente cero. El orden es determinista:
// por producto y dentro de cada producto por ubicación.
func Flatten(balances map[string]map[string]int64) []Entry {
	var entries []Entry
	for productID, locs := range balances {
		for locationID, qty := range locs {
			if qty == 0 {
				continue
			}
			entries = append(entries, Entry{ProductID: productID, LocationID: locationID, Qty: qty})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ProductID != entries[j].ProductID {
			return entries[i].ProductID < entries[j].ProductID
		}
		return entries[i].LocationID < entries[j].LocationID
	})
	return entries
}
