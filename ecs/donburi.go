// Package ecs provides ECS adapters for bounce.
package ecs

import (
	"github.com/phanxgames/bounce"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ModelEventType is the Donburi event type for bounce model events.
// Subscribe to this in your ECS systems to react to shapes being added to or
// removed from a model.
var ModelEventType = events.NewEventType[bounce.ModelEvent]()

type donburiListener struct {
	world donburi.World
}

// NewDonburiListener creates a model Listener backed by a Donburi world.
// Model events are published to ModelEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiListener(world donburi.World) bounce.Listener {
	return &donburiListener{world: world}
}

func (l *donburiListener) Update(event bounce.ModelEvent) {
	ModelEventType.Publish(l.world, event)
}
