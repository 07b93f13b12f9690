// Package platform detects which operating system family the CLI runs on
// and wraps the few filesystem calls whose behaviour differs between them.
// Detection happens at runtime and yields a tagged Family instead of relying
// on build constraints, so callers and tests can observe an unsupported host.
package platform
