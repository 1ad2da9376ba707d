// Package ecs provides ECS adapters for pinchzoom's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges pinchzoom gesture
// events (pinch, pan, auto-zoom, reconfigure) into a [Donburi] world as typed
// events. Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	zoomer.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
