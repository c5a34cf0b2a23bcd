package model

// Keys used in QueryResponse.Data.
const (
	DataOrderID          = "order_id"
	DataStatus           = "status"
	DataLookupFailed     = "lookup_failed"
	DataTicketID         = "ticket_id"
	DataSolution         = "solution"
	DataTicketFallback   = "ticket_fallback"
	DataSolutionFallback = "solution_fallback"
	DataModel            = "model"
	DataProvider         = "provider"
	DataFallback         = "fallback"
)

// QueryResponse is the structured answer to one query. The handler that
// serves the request builds it once; nobody modifies it afterwards.
type QueryResponse struct {
	Route    IntentCategory `json:"route"`
	Response string         `json:"response"`
	Data     map[string]any `json:"data"`
}

// NewQueryResponse builds a response with a non-nil data map.
func NewQueryResponse(route IntentCategory, response string, data map[string]any) QueryResponse {
	if data == nil {
		data = map[string]any{}
	}
	return QueryResponse{Route: route, Response: response, Data: data}
}
