package ecs_test

import "github.com/plus3/kiln/ecs"

// The package tests simulate a small shipping convoy: every ship has some
// mix of these components, spread over a handful of archetypes.

type Callsign string

type Heading struct {
	Angle float32
}

type Throttle struct {
	Power float32
}

type Hull struct {
	Integrity int
	Max       int
}

type Cargo struct {
	Tons float32
}

type Waypoint struct {
	X, Y float32
}

// Shielded is a zero-size marker component.
type Shielded struct{}

type Manifest struct {
	Items []string
}

func ptr[T any](v T) *T {
	return &v
}

func newConvoyRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Callsign](registry)
	ecs.RegisterComponent[Heading](registry)
	ecs.RegisterComponent[Throttle](registry)
	ecs.RegisterComponent[Hull](registry)
	ecs.RegisterComponent[Cargo](registry)
	ecs.RegisterComponent[Waypoint](registry)
	ecs.RegisterComponent[Shielded](registry)
	ecs.RegisterComponent[Manifest](registry)
	return registry
}

func newConvoyWorld() *ecs.World {
	return ecs.NewWorld(newConvoyRegistry())
}
