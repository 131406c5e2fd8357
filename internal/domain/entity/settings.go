package entity

// Settings valores globales de presentación (no son por orden).
type Settings struct {
	RestaurantName string `json:"restaurantName"`
	EventType      string `json:"eventType"`
}

// Snapshot es el estado completo persistible; se restaura de forma atómica.
type Snapshot struct {
	Products   []Product
	Categories []Category
	Orders     []Order
	Settings   Settings
}
