package google

// CalendarScopes are the Google OAuth scopes this service requests. The
// scheduling core only ever reads and writes calendar events, so the
// calendar scope is all it asks for.
var CalendarScopes = []string{
	"https://www.googleapis.com/auth/calendar",
}
