// Package store builds and submits the signed store RPC that places an
// encrypted envelope on a recipient's swarm, with snode failover, per spec
// §4.K.
package store
