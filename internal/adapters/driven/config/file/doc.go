// Package file provides file-based configuration for the service.
//
// Configuration is a TOML file with typed sections (server, search,
// sheet, export), layered under environment overrides so deployments can
// inject secrets without touching the file.
package file
