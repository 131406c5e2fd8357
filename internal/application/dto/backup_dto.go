package dto

// BackupPreviewDTO resumen de un respaldo antes de aplicarlo.
type BackupPreviewDTO struct {
	FileName       string `json:"file_name"`
	Products       int    `json:"products"`
	Categories     int    `json:"categories"`
	Orders         int    `json:"orders"`
	RestaurantName string `json:"restaurantName"`
	EventType      string `json:"eventType"`
	ExportDate     string `json:"exportDate,omitempty"`
}

// RestoreResponse resultado de POST /api/backup/restore.
type RestoreResponse struct {
	Message string           `json:"message"`
	Preview BackupPreviewDTO `json:"preview"`
}
