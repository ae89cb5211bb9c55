package dto

type GenerateRequest struct {
	Count int `json:"count"`
}
