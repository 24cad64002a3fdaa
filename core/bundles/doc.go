// Package bundles reads study bundles from the primary MongoDB store.
//
// Only bundles linked to a Wistia project (documents with a wistia.project
// field) are of interest; both live and soft-deleted bundles are returned so
// the caller can split them with Partition.
package bundles
