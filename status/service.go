package status

import (
	"io"
	"log"
)

// StatusService wraps Registry as a Service
// Stop writes the final metric values to the dump writer, if any
type StatusService struct {
	registry *Registry
	dump     io.Writer
}

// NewService creates a status service around reg; a nil reg allocates a fresh one
func NewService(reg *Registry, dump io.Writer) *StatusService {
	if reg == nil {
		reg = NewRegistry()
	}
	return &StatusService{registry: reg, dump: dump}
}

// Name implements service.Service
func (s *StatusService) Name() string {
	return "status"
}

// Dependencies implements service.Service
func (s *StatusService) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *StatusService) Init() error {
	return nil
}

// Start implements service.Service
func (s *StatusService) Start() error {
	return nil
}

// Stop implements service.Service
func (s *StatusService) Stop() error {
	if s.dump == nil {
		return nil
	}
	log.Printf("final metrics (%d)", s.registry.TotalCount())
	_, err := s.registry.WriteTo(s.dump)
	return err
}

// Registry returns the underlying metrics registry
func (s *StatusService) Registry() *Registry {
	return s.registry
}
