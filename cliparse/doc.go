// Package cliparse resolves server configuration. Precedence for every
// setting: CLI flag, then environment (cloud-provider name before the
// generic name), then a local-development default. See ParseFlags.
package cliparse
