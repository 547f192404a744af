package domain

type Kennel struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
