// Package http is the local JSON bridge in front of client.Backend.
//
// A GUI shell that cannot link Go drives the backend through these routes.
// Every /api request runs under a single handler mutex, so the backend sees
// the same one-call-at-a-time discipline the terminal client gives it.
package http
