package cli

import (
	"github.com/contextpack/contextpack/pkg/events"
	"github.com/contextpack/contextpack/pkg/logging"
)

// subscribeEventLogging surfaces bus traffic at debug level, so verbose runs
// show which documents each assembly admitted or skipped and how evaluation
// runs scored.
func subscribeEventLogging(bus events.Subscriber, logger logging.Logger) {
	bus.Subscribe(events.ContextAssembledEvent{}.Topic(), func(event interface{}) {
		if e, ok := event.(events.ContextAssembledEvent); ok {
			logger.Debug("context assembled",
				"strategy", e.Strategy,
				"documents", len(e.DocumentIDs),
				"tokens_used", e.TokensUsed,
				"remaining", e.Remaining,
			)
		}
	})

	bus.Subscribe(events.DocumentSkippedEvent{}.Topic(), func(event interface{}) {
		if e, ok := event.(events.DocumentSkippedEvent); ok {
			logger.Debug("document skipped",
				"strategy", e.Strategy,
				"document", e.DocumentID,
				"cost", e.Cost,
				"remaining", e.Remaining,
			)
		}
	})

	bus.Subscribe(events.EvalCompletedEvent{}.Topic(), func(event interface{}) {
		if e, ok := event.(events.EvalCompletedEvent); ok {
			logger.Debug("evaluation completed",
				"run_id", e.RunID,
				"strategy", e.Strategy,
				"questions", e.Questions,
				"mean_score", e.MeanScore,
			)
		}
	})
}
