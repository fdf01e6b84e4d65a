// Package distributionservice implements document distribution for DocFlow.
//
// The module owns the distribution rule, notification, and event log tables
// and exposes HTTP command/query handlers plus the in-process trigger that
// notifies the relevant users when a document revision is approved.
package distributionservice
