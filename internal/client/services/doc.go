// Package services contains the application services behind the StreamTube
// CLI. AuthService drives login, registration and logout through the session
// manager; VideoService composes API calls into the feed, watch, channel and
// upload flows and enforces the client-side guards (login required, no
// subscribing to your own channel, non-empty comments).
package services
