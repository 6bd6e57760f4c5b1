package events

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	registryOnce  sync.Once
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

// registerType maps a string name to an EventType and its payload struct type
// payloadInstance is a zero value of the payload struct, nil for payload-less events
func registerType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		typeToPayload[et] = reflect.TypeOf(payloadInstance)
	}
}

func initRegistry() {
	registryOnce.Do(func() {
		registerType("EventMove", EventMove, MovePayload{})
		registerType("EventScoreUpdate", EventScoreUpdate, ScorePayload{})
		registerType("EventPreyPlaced", EventPreyPlaced, PreyPayload{})
		registerType("EventGameOver", EventGameOver, GameOverPayload{})
		registerType("EventItem", EventItem, ItemPayload{})
	})
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	initRegistry()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType, empty if unregistered
func GetEventName(et EventType) string {
	initRegistry()
	return typeToName[et]
}

// ValidatePayload checks the payload's dynamic type against the registered type for ev.Type
func ValidatePayload(ev GameEvent) error {
	initRegistry()
	want, ok := typeToPayload[ev.Type]
	if !ok {
		return fmt.Errorf("unregistered event type %d", int(ev.Type))
	}
	if got := reflect.TypeOf(ev.Payload); got != want {
		return fmt.Errorf("%s: payload type %v, want %v", typeToName[ev.Type], got, want)
	}
	return nil
}
