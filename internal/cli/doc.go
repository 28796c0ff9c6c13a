// Package cli defines the recipekit command tree. It translates flags and
// the optional settings file into the application's configuration, wires a
// logger into the command context, and maps failures to non-zero exits.
package cli
