package dto

// MessageResponse is the generic acknowledgement body used by delete and
// health endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service liveness and the active storage backend
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
