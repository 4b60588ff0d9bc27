// Package maps models the Google Maps JavaScript API (v3) objects that
// server-side code hands to the browser.
//
// Every type serializes to the JSON shape understood by the companion
// jquery.gmapi.js runtime: classes become {"cls": NAME, "arg": [...]} where arg
// holds the constructor arguments in their declared order, constants become
// {"val": "Class.NAME"}, and the map container is the literal string "div".
// Maps additionally carry their markers under "mkr".
//
// Map also renders itself as a Static Maps API URL so that a preview image can
// be shown before the interactive map loads.
package maps
