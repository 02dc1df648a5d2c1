package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFiles embed.FS

// RegisterStatic serves the embedded client assets under /static.
func RegisterStatic(r *gin.Engine) {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// embed is resolved at compile time; a missing subdir is a build defect.
		panic(err)
	}
	r.StaticFS("/static", http.FS(sub))
}
