// Package ecs provides ECS adapters for bounce's model event system.
//
// The primary adapter is [NewDonburiListener], which bridges model events
// (shape added, shape removed) into a [Donburi] world as typed events.
// Subscribe to [ModelEventType] in your ECS systems to receive them.
//
// Usage:
//
//	remove := model.AddListener(ecs.NewDonburiListener(world))
//	defer remove()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
