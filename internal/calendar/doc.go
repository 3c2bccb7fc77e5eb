// Package calendar wraps the Google Calendar API for listing and
// creating events. Authentication uses a pre-issued OAuth access
// token; no token refresh or consent flow is performed here.
package calendar
