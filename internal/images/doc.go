// Package images downloads link thumbnails into the site's image
// directory. Stored bytes are tracked by blake2b digest so an unchanged
// thumbnail is never rewritten on re-capture.
package images
