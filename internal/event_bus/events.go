package event_bus

const (
	// EventPreferencesUpdated carries a PreferencesUpdated payload whenever the
	// preference editor produces a new category filter snapshot.
	EventPreferencesUpdated EventType = "preferences.updated"

	// EventSessionChanged carries a SessionChanged payload on login and logout.
	EventSessionChanged EventType = "session.changed"
)

type PreferencesUpdated struct {
	CategoryIds []int
}

type SessionChanged struct {
	Authenticated bool
}
