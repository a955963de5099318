package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/ppda/pkg/domain"
)

// LoggingHooks logs accept and generate events. Steps are logged at debug
// level only, since a single generation can take many of them.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "step",
				"model", e.Model,
				"state", e.Key.State.String(),
				"top", e.Key.Top.String(),
				"input", e.Key.Input.String(),
				"to", e.To.String(),
				"weight", e.Weight,
				"depth", e.Depth,
			)
		},
		OnAccept: func(ctx context.Context, e *domain.AcceptEvent) {
			logger.InfoContext(ctx, "accept",
				"model", e.Model,
				"length", e.Length,
				"weight", e.Weight,
			)
		},
		OnGenerate: func(ctx context.Context, e *domain.GenerateEvent) {
			if e.Err != nil {
				logger.ErrorContext(ctx, "generate failed", "model", e.Model, "err", e.Err)
				return
			}
			logger.InfoContext(ctx, "generate",
				"model", e.Model,
				"id", e.Sample.ID,
				"text", e.Sample.Text,
				"weight", e.Sample.Weight,
				"duration", e.Duration,
			)
		},
	}
}

// Chain combines several hook sets; each callback runs in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnAccept: func(ctx context.Context, e *domain.AcceptEvent) {
			for _, h := range hooks {
				if h.OnAccept != nil {
					h.OnAccept(ctx, e)
				}
			}
		},
		OnGenerate: func(ctx context.Context, e *domain.GenerateEvent) {
			for _, h := range hooks {
				if h.OnGenerate != nil {
					h.OnGenerate(ctx, e)
				}
			}
		},
	}
}
