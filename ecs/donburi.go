package ecs

import (
	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for pinchzoom gesture events.
var GestureEventType = events.NewEventType[pinchzoom.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Gesture
// events are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) pinchzoom.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event pinchzoom.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
