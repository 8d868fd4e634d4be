package entity

type Category struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
