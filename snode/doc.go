// Package snode defines the Snode and Swarm data types shared by discovery,
// swarm resolution, and the store/retrieve path, per spec §3.
package snode
