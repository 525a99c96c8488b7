// Package cli provides the interactive AlloDocta back-office client.
//
// It wires configuration, the durable credential store, the API services,
// and an interactive REPL organised around the dashboard's route tree.
// Typical flow: restore the saved session, land on the home dashboard (or
// the login screen when anonymous), then navigate with `open <route>` and
// run per-screen commands.
//
// Key features:
//   - Login / Logout / token refresh / password reset
//   - Doctor management with KYC and account-deletion workflows
//   - Location hierarchy (districts, regions, cities)
//   - Pharmacy registry with guard-duty rotation and CSV export
//   - Medicine registry with bulk import
//   - Ads, articles and push notifications
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Open, and runREPL for details.
package cli
