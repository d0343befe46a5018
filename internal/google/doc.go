// Package google handles OAuth2 authentication against the Google Calendar
// API. Tokens are cached in a file under the user cache directory; client
// credentials come from GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET.
package google
