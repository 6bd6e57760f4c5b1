package status

// Metric keys shared between producers of metrics and the shutdown dump
const (
	SimTicks    = "sim.ticks"
	SimScore    = "sim.score"
	SimCaptures = "sim.captures"
	SimStatus   = "sim.status"
	SimTickMs   = "sim.tick_ms"

	QueueDropped = "queue.dropped"

	UIDrains   = "ui.drains"
	UIApplied  = "ui.applied"
	UIUnknown  = "ui.unknown"
	UIFlushed  = "ui.flushed"
	UIGameOver = "ui.game_over"

	PipelineProduced       = "pipeline.produced"
	PipelineConsumed       = "pipeline.consumed"
	PipelineProducersAlive = "pipeline.producers_alive"
	PipelineConsumersAlive = "pipeline.consumers_alive"
)
