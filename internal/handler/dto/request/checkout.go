package request

type StartCheckoutRequest struct {
	// Absent for direct navigation; checkout then falls back to the
	// default placeholder booking.
	HandoffToken string `json:"handoffToken,omitempty"`
}

type EditFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}
