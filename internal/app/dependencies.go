package app

import (
	"github.com/slotbook/slotbook/internal/config"
	"github.com/slotbook/slotbook/internal/event_bus"
	"github.com/slotbook/slotbook/internal/utils"
	"github.com/slotbook/slotbook/pkg/api"
	"github.com/slotbook/slotbook/pkg/auth"
	"github.com/slotbook/slotbook/pkg/calendar"
	"github.com/slotbook/slotbook/pkg/category"
	"github.com/slotbook/slotbook/pkg/preferences"
	"github.com/slotbook/slotbook/pkg/timeslot"
)

// Dependencies holds all clients and services of the application.
type Dependencies struct {
	Rest *api.Client
	Bus  *event_bus.EventBus

	Session *auth.Session

	TimeSlotClient    timeslot.Client
	CategoryClient    category.Client
	PreferencesClient preferences.Client
	PreferencesBridge *preferences.Bridge

	Clock utils.Clock
	View  *calendar.View
}

// BuildDependencies initializes and wires all application services.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Rest = api.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	deps.Bus = event_bus.NewEventBus()

	deps.Session = auth.NewSession(deps.Rest, deps.Bus)

	deps.TimeSlotClient = timeslot.NewClient(deps.Rest)
	deps.CategoryClient = category.NewClient(deps.Rest)
	deps.PreferencesClient = preferences.NewClient(deps.Rest)
	deps.PreferencesBridge = preferences.NewBridge(deps.PreferencesClient, deps.Bus)

	deps.Clock = &utils.SystemClock{}
	deps.View = calendar.NewView(deps.TimeSlotClient, deps.Clock, cfg.Calendar.WeekFirstWeekday(), deps.Bus)

	return deps
}
