package dto

// DashboardSummaryDTO contadores del panel. El cliente los sondea (~6 s);
// todas las consultas detrás son read-only.
type DashboardSummaryDTO struct {
	Destinations   int64 `json:"destinations"`
	ActiveOffers   int64 `json:"active_offers"`
	Packages       int64 `json:"packages"`
	Movies         int64 `json:"movies"`
	UnreadContacts int64 `json:"unread_contacts"`
	ActiveUsers    int64 `json:"active_users"`
}
