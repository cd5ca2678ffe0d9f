// Package project locates and decodes declcheck.toml and provides the
// content digests used as cache keys.
package project
