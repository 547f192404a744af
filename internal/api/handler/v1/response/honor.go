package response

// DeliveryOutcome reports one item of a batch delivery. Error is empty
// on success.
type DeliveryOutcome struct {
	HonorID    uint   `json:"honor_id"`
	HasherID   uint   `json:"hasher_id"`
	EventID    uint   `json:"event_id"`
	DeliveryID uint   `json:"delivery_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

type DeliveriesResponse struct {
	Results []DeliveryOutcome `json:"results"`
}
