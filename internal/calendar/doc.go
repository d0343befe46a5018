// Package calendar provides the Google Calendar collaborator used by the
// scheduling core.
//
// The client wraps the Calendar v3 API for a single calendar ID and exposes
// exactly the contract the core consumes: listing events in a time range,
// inserting, updating and deleting. Events are converted to and from the
// core's event type at this boundary; timestamps are exchanged as RFC3339.
//
// Authentication uses the Google OAuth2 flow from the google package with a
// file-based token, calendar scope only.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx, "primary")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.ListEvents(ctx, time.Now(), time.Now().AddDate(0, 0, 7), "")
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
