// Package cleanup runs a complete Wistia cleanup: it loads the bundles and the
// Wistia catalog side by side, works out what is orphaned, shows it, asks for
// confirmation and deletes it.
//
// # States
//
// A run moves through
//
//	LoadingLocal + LoadingRemote -> Reconciling -> Presenting -> AwaitingConfirmation -> Deleting -> Done
//
// and stops early in Done when there is nothing to delete, when the run is a
// dry run, or when the user declines. Any failure ends the run in Failed.
// Loading is never cancelled midway: when one side fails, the other still
// finishes before the run fails.
//
// # Deleting
//
// Projects are deleted first, then medias. The media pass runs even if the
// project pass failed; both errors are reported together.
package cleanup
