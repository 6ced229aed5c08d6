// Package app provides the orchestration layer for the slicer application.
//
// # Overview
//
// This package wires together configuration, logging, content loading, state
// publishing and the UI. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load configuration from ~/.config/slicer/config.toml (or the built-in
//     demo sources when --demo is given and no file exists)
//  2. Open the slog log file; the terminal belongs to the UI
//  3. Build the content registry and hide every source off-screen
//  4. Poll until every source can be built (100ms, up to 300 attempts)
//  5. Start the TUI and block until the user exits or the context cancels
//  6. Log a closing summary from state.Store
//
// # Components
//
//   - app.go: Run, Check and session setup
//   - logging.go: Log file handler
//   - poller.go: Content readiness polling
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()         Read config (or demo)
//	       ├─────> openLogger()          slog text handler on log_file
//	       ├─────> content.NewRegistry() Sources, hidden until adopted
//	       ├─────> waitReady()           Poll Registry.Ready
//	       └─────> ui.Run()              Start TUI (blocks)
//
//	UI loop:
//	┌─────────────────────────────────────────┐
//	│ reveal.Machine state change             │
//	│  └─> store.Update()                     │
//	│      └─> Run reads store.Snapshot()     │
//	│          after the UI exits             │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - stdout is not a terminal
//   - Configuration file not found (without --demo) or invalid
//   - Log file cannot be created
//
// Recoverable errors (logged, startup continues):
//   - Sources that never became ready; interactions on them are ignored
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{Demo: true}); err != nil {
//		log.Fatalf("slicer failed: %v", err)
//	}
package app
