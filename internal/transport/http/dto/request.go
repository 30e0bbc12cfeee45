package dto

// ImportRequest is the body of POST /tokens/import.
type ImportRequest struct {
	Address string `json:"address"`
}

// SwapRequest is the body of POST /swap. Numbers travel as strings so no
// precision is lost in transit.
type SwapRequest struct {
	From                  string  `json:"from"`
	To                    string  `json:"to"`
	Amount                string  `json:"amount"`
	SlippagePercent       *string `json:"slippagePercent,omitempty"`
	MinReceived           *string `json:"minReceived,omitempty"`
	AcknowledgeHighImpact bool    `json:"acknowledgeHighImpact"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
