package gmapi

import (
	"embed"
	"io/fs"
)

//go:embed assets/js/*.js
var embeddedAssets embed.FS

// Companion script paths inside AssetsFS.
const (
	AssetScript    = "js/jquery.gmapi.js"
	AssetScriptMin = "js/jquery.gmapi.min.js"
)

// AssetsFS exposes the jQuery companion script that turns rendered widgets
// into live maps, so Go applications can serve it without a separate media
// directory.
//
// Typical mount:
//
//	mux.Handle("/media/gmapi/",
//	  http.StripPrefix("/media/gmapi/",
//	    http.FileServerFS(gmapi.AssetsFS()),
//	  ),
//	)
//
// components/media wraps exactly this.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
