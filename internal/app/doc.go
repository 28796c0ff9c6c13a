// Package app holds the application-level configuration: validated runtime
// settings, logger construction, and the optional HCL settings file that
// seeds both. It is decoupled from any specific entrypoint like the CLI.
package app
