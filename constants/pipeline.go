package constants

import "time"

// Demo pipeline defaults
const (
	ProducerCount    = 4
	ConsumerCount    = 5
	ItemsPerProducer = 5
	ItemMin          = 1
	ItemMax          = 100

	// MaxJitter bounds the random pause after each produce or consume
	MaxJitter = time.Second

	// PipelineQueueCapacity of 0 makes the demo queue unbounded
	PipelineQueueCapacity = 0
)

// Worker name prefixes
const (
	ProducerPrefix = "Producer-"
	ConsumerPrefix = "Consumer-"
)
