// Package config handles application configuration loading and validation.
//
// Configuration is loaded from fatturapa.yml and validated using struct tags.
// It carries the deployment identities (issuer, transmitter) that every
// rendered document shares, plus server and logging settings.
package config
