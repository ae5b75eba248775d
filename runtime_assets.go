package formcheck

import (
	"io/fs"

	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the stylesheet and live-validation script used by
// the HTML form so Go applications can serve them without a build step.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formcheck.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
