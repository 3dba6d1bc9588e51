// Package publish streams composed focus trees to a live viewer over
// socket.io. Publishing is optional; a run without a viewer URL never opens
// a connection.
package publish
