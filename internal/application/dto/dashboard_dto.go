package dto

// DashboardResponse contadores del tablero.
//
// ActiveLocations suma distinct(to_location) + distinct(from_location) por
// separado, por lo que una ubicación activa en ambos sentidos cuenta dos
// veces (definición histórica, proxy de actividad).
type DashboardResponse struct {
	Products        int64 `json:"products"`
	Locations       int64 `json:"locations"`
	Movements       int64 `json:"movements"`
	ActiveLocations int64 `json:"active_locations"`
}
