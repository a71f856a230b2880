// Package linktree fetches Linktree profile pages and extracts their
// link definitions.
//
// Linktree ships the page state as an embedded JSON payload in a
// <script type="application/json"> block. This package parses the page,
// decodes props.pageProps.links from that block, and keeps only entries
// that carry a URL. The payload format is unversioned upstream and will
// eventually change; extraction failures surface as errors naming the
// page so the breakage is diagnosable.
package linktree
