package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStep     EventType = "step"
	EventAccept   EventType = "accept"
	EventGenerate EventType = "generate"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Model     string    `json:"model"`
}

// StepEvent describes one executed transition.
type StepEvent struct {
	EventBase
	Key    Key    `json:"key"`
	To     State  `json:"to"`
	Weight string `json:"weight"`
	Depth  int    `json:"depth"`
}

// AcceptEvent describes one scoring call.
type AcceptEvent struct {
	EventBase
	Length int    `json:"length"`
	Weight string `json:"weight"`
	Zero   bool   `json:"zero"`
}

// GenerateEvent describes one finished (or failed) generation.
type GenerateEvent struct {
	EventBase
	Sample   *Sample       `json:"sample,omitempty"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnStep     func(context.Context, *StepEvent)
	OnAccept   func(context.Context, *AcceptEvent)
	OnGenerate func(context.Context, *GenerateEvent)
}
