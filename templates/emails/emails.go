// Package emails holds the transactional mail bodies. Each template has an
// .html and a .txt rendering, optionally suffixed with a locale
// (contact_notification_en.html).
package emails

import "embed"

//go:embed *.html *.txt
var FS embed.FS
