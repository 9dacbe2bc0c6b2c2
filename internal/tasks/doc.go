// Package tasks implements the four maintenance workflows: pinning media
// from the upload log or from thumbnail file names, pruning unreferenced
// thumbnails, and reconciling the upload log against what the sticker
// packs (or the thumbnails directory) still reference.
//
// Every workflow is a sequential pipeline. Per-item failures are counted
// and reported but never abort the batch; the returned error reflects
// whether anything failed so the commands can exit non-zero.
package tasks
