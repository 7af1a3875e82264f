// Package app contains the core application logic. It defines the App
// struct, its logger construction, and the generate-validate-write
// lifecycle, decoupled from the process entrypoint.
package app
