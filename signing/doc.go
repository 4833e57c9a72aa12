// Package signing builds the request signatures the core attaches to snode
// retrieve requests and to open-group-server (SOGS) requests, including
// SOGS key blinding, per spec §4.J.
package signing
