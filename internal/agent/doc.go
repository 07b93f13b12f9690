// Package agent defines the handle through which every module talks to the
// remote Aries agent, and the backends that implement it. A backend is picked
// once per invocation by Kind; the returned Agent is immutable afterwards.
package agent
