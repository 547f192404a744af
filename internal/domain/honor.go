package domain

const (
	CategoryHash = "hash"
	CategoryHare = "hare"
	CategoryJedi = "jedi"
)

// HonorDef says that crossing Threshold in Category earns Title,
// within one kennel. Counts must strictly exceed the threshold.
type HonorDef struct {
	ID        uint   `json:"id"`
	KennelID  uint   `json:"kennel_id"`
	Category  string `json:"category"`
	Threshold int    `json:"threshold"`
	Title     string `json:"title"`
}

// HonorDelivery records that a hasher was handed an honor at an event.
type HonorDelivery struct {
	ID       uint `json:"id"`
	HonorID  uint `json:"honor_id"`
	HasherID uint `json:"hasher_id"`
	EventID  uint `json:"event_id"`
}

// HonorDue is one earned-but-undelivered honor.
type HonorDue struct {
	HasherID   uint   `json:"hasher_id"`
	HasherName string `json:"hasher_name"`
	HonorID    uint   `json:"honor_id"`
	HonorTitle string `json:"honor_title"`
	Threshold  int    `json:"threshold"`
	Category   string `json:"category"`
}
