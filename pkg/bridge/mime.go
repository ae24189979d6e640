package bridge

import (
	"mime"
	"strings"
)

// Extensions common in processing workflows that the platform MIME table
// does not always know.
var extraMIMETypes = map[string]string{
	".csv":     "text/csv",
	".geojson": "application/vnd.geo+json",
	".gml":     "application/gml+xml",
	".gpkg":    "application/geopackage+sqlite3",
	".tif":     "image/tiff",
	".tiff":    "image/tiff",
	".txt":     "text/plain",
}

func init() {
	for ext, typ := range extraMIMETypes {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// mimeTypeByExtension returns the bare MIME type registered for a file
// extension (leading dot included), or "" when the extension is unknown.
func mimeTypeByExtension(ext string) string {
	if ext == "" || ext == "." {
		return ""
	}
	typ := mime.TypeByExtension(strings.ToLower(ext))
	if typ == "" {
		return ""
	}
	// TypeByExtension may carry parameters ("text/html; charset=utf-8").
	if i := strings.IndexByte(typ, ';'); i >= 0 {
		typ = strings.TrimSpace(typ[:i])
	}
	return typ
}
