package notification

// Notification is synthesized from live query state on every request; there
// is no notification table. IDs are stable so cookie-held read state can
// match them across requests ("transfer-<id>", "transaction-<id>", or the
// aggregate "admin-requests"/"admin-transactions" counters).
type Notification struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
	Read    bool   `json:"read"`
}

const (
	KindTransfer    = "transfer"
	KindTransaction = "transaction"
	KindRequests    = "requests"

	AdminRequestsID     = "admin-requests"
	AdminTransactionsID = "admin-transactions"
)
