// Package config owns the aries-cli configuration file and the rules that
// turn it, together with command-line and environment overrides, into the
// effective configuration of one invocation.
//
// The file lives at ~/.config/aries-cli/config.yaml on Unix-like systems and
// holds an ordered list of named environments:
//
//	configurations:
//	  - name: Default
//	    endpoint: https://agent.community.animo.id
//	  - name: staging
//	    endpoint: https://staging.example
//	    api_key: abc123
//
// Every read validates the whole document against an embedded JSON schema;
// there is no partial success.
package config
