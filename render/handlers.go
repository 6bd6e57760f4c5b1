package render

import (
	"github.com/lixenwraith/vi-snake/events"
)

type moveHandler struct{}

func (moveHandler) EventTypes() []events.EventType { return []events.EventType{events.EventMove} }

func (moveHandler) HandleEvent(d *Drainer, ev events.GameEvent) {
	d.sink.SetSnakeShape(ev.Payload.(events.MovePayload).Points)
}

type scoreHandler struct{}

func (scoreHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventScoreUpdate}
}

func (scoreHandler) HandleEvent(d *Drainer, ev events.GameEvent) {
	d.sink.SetScoreText(ev.Payload.(events.ScorePayload).Score)
	if d.cues != nil {
		d.cues.PlayCapture()
	}
}

type preyHandler struct{}

func (preyHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventPreyPlaced}
}

func (preyHandler) HandleEvent(d *Drainer, ev events.GameEvent) {
	d.sink.SetPreyShape(ev.Payload.(events.PreyPayload).Rect)
}

// gameOverHandler shows the control once; repeats are acknowledged silently
type gameOverHandler struct{}

func (gameOverHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventGameOver}
}

func (gameOverHandler) HandleEvent(d *Drainer, ev events.GameEvent) {
	if !d.markOver() {
		return
	}
	d.sink.ShowGameOverControl()
	if d.cues != nil {
		d.cues.PlayGameOver()
	}
}
