// Package transport defines the request/response abstraction the core
// issues snode and seed RPCs over, plus an HTTP implementation for the
// request/response storage RPC and a WebSocket implementation for the
// websocket-style wrapper of spec §4.E/§6.
package transport
