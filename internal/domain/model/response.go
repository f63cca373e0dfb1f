package model

// DetailsResponse carries confirmations and payload validation failures.
type DetailsResponse struct {
	Details string `json:"details"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
