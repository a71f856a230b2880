// Package commands defines the linky CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init      Write a default .linky.yml config
//   - capture   Fetch a Linktree page and write link files
//   - reorder   Move the welcome video before the links block in HTML files
//
// # Implementation
//
// The root command loads the config file, applies flag overrides and
// builds the dependency graph (stores, Linktree client, capture service)
// before any subcommand runs, so handlers share one app context with
// timeouts and a common logger.
package commands
