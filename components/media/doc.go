// Package media serves the gmapi companion script (or any directory standing
// in for it) during development.
//
// The handler is mounted under the media URL plus the gmapi media prefix,
// /media/gmapi/ by default, so the paths written by the widget and script
// helpers resolve. When the prefix is an absolute http(s) URL the assets live
// elsewhere and nothing is registered. Only GET and HEAD are answered.
package media
