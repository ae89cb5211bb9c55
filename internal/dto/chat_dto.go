package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response        string   `json:"response"`
	Sources         []string `json:"sources"`
	MatchCount      int      `json:"match_count"`
	TotalCandidates int      `json:"total_candidates"`
	Suggestions     []string `json:"suggestions"`
	IsDemo          bool     `json:"is_demo"`
}
