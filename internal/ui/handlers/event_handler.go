package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"gadgetfind/internal/eventbus"
	"gadgetfind/internal/ui/state"
)

// EventHandler applies domain events forwarded from the bus to the UI state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		h.state.SetStatus(fmt.Sprintf("Loaded %d items from %s", e.ItemCount, e.Source))
	}
	return nil
}

// UIEvents lists the event types worth forwarding to the running program.
// Errors stay out: the command that failed reports it through its own msg.
var UIEvents = []eventbus.EventType{
	eventbus.EventCatalogLoaded,
}

// auditEvents are written to the log file as they pass over the bus
var auditEvents = []eventbus.EventType{
	eventbus.EventCatalogLoaded,
	eventbus.EventSearchCompleted,
	eventbus.EventSearchCleared,
	eventbus.EventScreenPushed,
	eventbus.EventScreenPopped,
	eventbus.EventItemOpened,
	eventbus.EventItemNotFound,
	eventbus.EventError,
	eventbus.EventConfigLoaded,
	eventbus.EventConfigSaved,
}

// SubscribeLogger logs domain events. It returns a function that removes every subscription.
func SubscribeLogger(bus eventbus.EventBus, logger *zap.Logger) func() {
	logger = logger.Named("events")
	unsubs := make([]func(), 0, len(auditEvents))
	for _, t := range auditEvents {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logEvent(logger, e)
		}))
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

func logEvent(logger *zap.Logger, event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		logger.Info("catalog loaded", zap.String("source", e.Source), zap.Int("items", e.ItemCount))
	case eventbus.SearchCompletedEvent:
		logger.Debug("search completed",
			zap.String("screen", e.Screen),
			zap.String("query", e.Query),
			zap.Int("matches", e.MatchCount),
			zap.String("first", e.FirstMatch))
	case eventbus.SearchClearedEvent:
		logger.Debug("search cleared", zap.String("screen", e.Screen))
	case eventbus.ScreenPushedEvent:
		logger.Info("screen pushed", zap.String("screen", e.Screen), zap.String("param", e.Param), zap.Int("depth", e.Depth))
	case eventbus.ScreenPoppedEvent:
		logger.Info("screen popped", zap.String("screen", e.Screen), zap.Int("depth", e.Depth))
	case eventbus.ItemOpenedEvent:
		logger.Info("item opened", zap.String("id", e.ID), zap.String("title", e.Title))
	case eventbus.ItemNotFoundEvent:
		logger.Warn("item not found", zap.String("id", e.ID))
	case eventbus.ErrorEvent:
		logger.Error(e.Message, zap.Error(e.Err))
	case eventbus.ConfigLoadedEvent:
		logger.Info("config loaded", zap.String("path", e.Path), zap.String("catalog", e.CatalogPath))
	case eventbus.ConfigSavedEvent:
		logger.Info("config saved", zap.String("path", e.Path))
	default:
		logger.Debug("event", zap.String("type", string(event.Type())))
	}
}
