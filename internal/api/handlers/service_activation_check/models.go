package service_activation_check

// ActivationCheckRequest HTTP request model
type ActivationCheckRequest struct {
	CurrentActiveCount int `json:"currentActiveCount"`
}

// ActivationCheckResponse HTTP response model
type ActivationCheckResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}
