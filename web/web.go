// Package web embeds the server-rendered pages: the registration form
// served at the root and the post-registration success page.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
