package sse

import (
	"time"

	"github.com/CraftLedger/craft_api/internal/models"
)

// HubNotifier broadcasts product lifecycle events through the SSE Hub.
type HubNotifier struct {
	hub *Hub
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// NotifyProductCreated broadcasts a product.created event for the record.
func (n *HubNotifier) NotifyProductCreated(record *models.ProductRecord) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&ProductEvent{
		Event:      EventProductCreated,
		ProductID:  record.ID,
		Name:       record.Name,
		Tags:       record.Tags,
		PriceRange: record.PriceRange,
		Timestamp:  time.Now().UTC(),
	})
}
