// Package cli defines the Cobra command tree for aries-cli. The module
// commands share one startup sequence (resolve configuration, build the
// agent, probe it, dispatch); configuration, environments and version are
// local commands that never contact an agent.
package cli
