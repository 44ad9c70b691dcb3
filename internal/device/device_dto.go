package device

type CreateDeviceRequest struct {
	DeviceID     string  `json:"device_id" binding:"required,max=50"`
	SerialNumber string  `json:"serial_number" binding:"required,max=100"`
	IPAddress    string  `json:"ip_address" binding:"required,ip"`
	Location     *string `json:"location"`
	Faculty      *string `json:"faculty"`
}

type UpdateDeviceRequest struct {
	IPAddress *string `json:"ip_address" binding:"omitempty,ip"`
	Location  *string `json:"location"`
	Faculty   *string `json:"faculty"`
}

type DeviceResponse struct {
	ID           string  `json:"id"`
	DeviceID     string  `json:"device_id"`
	SerialNumber string  `json:"serial_number"`
	IPAddress    string  `json:"ip_address"`
	APIKey       string  `json:"api_key,omitempty"`
	Location     *string `json:"location,omitempty"`
	Faculty      *string `json:"faculty,omitempty"`
	IsActive     bool    `json:"is_active"`
	LastSeen     *string `json:"last_seen,omitempty"`
}
