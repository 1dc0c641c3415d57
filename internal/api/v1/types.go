package apiv1

import "github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/catalog"

// Pong is the ping response body.
type Pong struct {
	Ping string `json:"ping"`
}

// VideoList is the catalog query response body.
type VideoList struct {
	Videos []catalog.Video `json:"videos"`
	Total  int             `json:"total"`
}

// CheckoutStatus reports the lifecycle state of a checkout session.
type CheckoutStatus struct {
	State string `json:"state"`
}
