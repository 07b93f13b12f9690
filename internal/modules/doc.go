// Package modules holds the command groups that run against the shared agent
// handle: connections, invitations, credentials, messages, features, schema
// and credential-definition. Each module declares its own flags and follows
// the same Register/Run contract, so the dispatcher never needs to know what
// a module does or which backend it talks to.
package modules
