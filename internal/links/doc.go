// Package links writes markdown link files for the site's _links
// collection: one file per link, named by a slug of its title, with yaml
// front matter carrying title, url, priority and optional image.
package links
