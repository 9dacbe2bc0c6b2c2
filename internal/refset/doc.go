// Package refset builds the set of media IDs considered "in use", either
// from sticker pack files or from the names of thumbnail files.
//
// A media ID present in the reference set must never be deleted from the
// upload log or have its purpose cleared; an absent ID is eligible for
// removal, pruning, or un-pinning.
package refset
