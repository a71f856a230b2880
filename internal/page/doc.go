// Package page queries and rearranges parsed HTML documents.
//
// Its main job is the welcome-video rule: move the element with id
// "welcome-vid" so it sits immediately before the first ".links" block
// under the same parent. Every lookup treats absence as a no-op, never
// an error, so the operation is safe against any document shape.
package page
