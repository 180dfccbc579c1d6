package status

import "github.com/bazaarph/marketplace-api/internal/domain"

// TrackingStep is one milestone on the buyer's delivery timeline.
type TrackingStep struct {
	Key         string
	Title       string
	Description string
	// ReachedBy holds every shipment status at or past this milestone.
	// Each set is a superset of the next step's set, so reaching a later
	// milestone always marks the earlier ones reached too.
	ReachedBy map[domain.ShipmentStatus]bool
}

// TrackingSteps is the fixed four-milestone delivery timeline, in order.
var TrackingSteps = []TrackingStep{
	{
		Key:         "confirmed",
		Title:       "Order Confirmed",
		Description: "Seller has confirmed your order",
		ReachedBy: shipmentSet(
			domain.ShipmentProcessing,
			domain.ShipmentReadyToShip,
			domain.ShipmentShipped,
			domain.ShipmentOutForDelivery,
			domain.ShipmentDelivered,
			domain.ShipmentFailedToDeliver,
			domain.ShipmentReceived,
		),
	},
	{
		Key:         "processing",
		Title:       "Preparing Order",
		Description: "Seller is preparing your package",
		ReachedBy: shipmentSet(
			domain.ShipmentReadyToShip,
			domain.ShipmentShipped,
			domain.ShipmentOutForDelivery,
			domain.ShipmentDelivered,
			domain.ShipmentFailedToDeliver,
			domain.ShipmentReceived,
		),
	},
	{
		Key:         "shipped",
		Title:       "Order Shipped",
		Description: "Package handed to the courier",
		ReachedBy: shipmentSet(
			domain.ShipmentShipped,
			domain.ShipmentOutForDelivery,
			domain.ShipmentDelivered,
			domain.ShipmentFailedToDeliver,
			domain.ShipmentReceived,
		),
	},
	{
		Key:         "delivered",
		Title:       "Delivered",
		Description: "Package delivered to your address",
		ReachedBy: shipmentSet(
			domain.ShipmentDelivered,
			domain.ShipmentReceived,
		),
	},
}

// ResolvedStep is a timeline milestone with its reached flag for a
// particular order.
type ResolvedStep struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reached     bool   `json:"reached"`
}

// ResolveTrackingSteps computes the reached flag for each milestone from
// the order's current shipment status. A status in no ReachedBy set (for
// example waiting_for_seller, returned, or a value this build does not
// know) yields all steps unreached, which renders as "not yet confirmed".
func ResolveTrackingSteps(shipment domain.ShipmentStatus) []ResolvedStep {
	steps := make([]ResolvedStep, len(TrackingSteps))
	for i, def := range TrackingSteps {
		steps[i] = ResolvedStep{
			Key:         def.Key,
			Title:       def.Title,
			Description: def.Description,
			Reached:     def.ReachedBy[shipment],
		}
	}
	return steps
}

func shipmentSet(statuses ...domain.ShipmentStatus) map[domain.ShipmentStatus]bool {
	set := make(map[domain.ShipmentStatus]bool, len(statuses))
	for _, s := range statuses {
		set[s] = true
	}
	return set
}
