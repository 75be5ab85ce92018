// Package server runs the bridge's HTTP listener and shuts it down
// gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
