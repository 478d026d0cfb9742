package services

// EventPublisher records product analytics events. *utils.PosthogClientWrapper implements it.
type EventPublisher interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
