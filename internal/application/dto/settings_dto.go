package dto

// SettingsRequest body de PUT /api/settings.
type SettingsRequest struct {
	RestaurantName string `json:"restaurantName"`
	EventType      string `json:"eventType"`
}

// ViewRequest body de PUT /api/view.
type ViewRequest struct {
	View string `json:"view"`
}

// ViewResponse pantalla activa y badge de cocina.
type ViewResponse struct {
	View         string `json:"view"`
	PendingCount int    `json:"pending_count"`
}
