package render

import (
	"time"
)

// DrainerService runs a Drainer under the service hub
// Stop performs the shutdown handshake: no re-arm, flush, bounded join
type DrainerService struct {
	drainer     *Drainer
	joinTimeout time.Duration
}

// NewDrainerService wraps d; joinTimeout bounds the shutdown join
func NewDrainerService(d *Drainer, joinTimeout time.Duration) *DrainerService {
	return &DrainerService{drainer: d, joinTimeout: joinTimeout}
}

// Name implements service.Service
func (s *DrainerService) Name() string { return "drainer" }

// Dependencies implements service.Service
func (s *DrainerService) Dependencies() []string { return []string{"terminal", "audio", "status"} }

// Init implements service.Service
func (s *DrainerService) Init() error { return nil }

// Start implements service.Service
func (s *DrainerService) Start() error {
	s.drainer.Start()
	return nil
}

// Stop implements service.Service
func (s *DrainerService) Stop() error {
	return s.drainer.Shutdown(s.joinTimeout)
}
