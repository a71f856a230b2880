// Package capture orchestrates a Linktree capture: fetch the profile,
// then per link derive a slug, store the thumbnail if any, write the
// markdown link file and update the manifest.
package capture
