// Package cli provides the interactive StreamTube command-line client.
//
// It wires configuration, the token store, the session manager, the REST
// client and the application services, then runs a REPL. The session is
// restored from the store on start, so a user who logged in once stays
// logged in across runs until they log out.
//
// Commands:
//   - register, login, logout, whoami
//   - feed [page], search <query>, watch <id>
//   - like <id>, comment <id>, reply <videoId> <commentId>
//   - channel [id], subscribe <id>, upload
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
