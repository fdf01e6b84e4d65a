// Package documentservice manages the document lifecycle for DocFlow.
//
// The module owns the documents table and hosts the approval command that
// hands approved revisions over to the distribution module for fan-out.
package documentservice
