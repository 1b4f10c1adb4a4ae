package events

// Topic constants for domain events emitted by the checkout workflow.
const (
	TopicCartItemAdded      = "cart.item_added"
	TopicCartItemRemoved    = "cart.item_removed"
	TopicCheckoutCompleted  = "checkout.completed"
	TopicShipmentDispatched = "shipment.dispatched"
)
