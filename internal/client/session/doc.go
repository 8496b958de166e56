// Package session owns the client's authentication state: the bearer token,
// the user identity decoded from it, and the token's persistence.
//
// A Manager is created once by the composition root and handed to whatever
// needs it (the API client reads CurrentToken on every request, the CLI reads
// CurrentUser for its prompt). There is no package-level state.
//
// # Lifecycle
//
//	m := session.NewManager(store, log)   // Status() == StatusInitializing
//	m.Initialize(ctx)                     // restores a persisted token, never fails
//	m.Login(ctx, token)                   // persists, then decodes
//	m.Logout(ctx)                         // best-effort delete, always clears memory
//
// # Failure asymmetry
//
// Initialize swallows store and decode failures (they are logged) and
// reports StatusDegraded when a stored token cannot be decoded. Login
// propagates both: a store failure leaves the state untouched, a decode
// failure leaves the new token held without a user.
//
// Token claims are read without verifying the signature; this is a display
// convenience, not a security check.
package session
