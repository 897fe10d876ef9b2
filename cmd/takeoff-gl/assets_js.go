//go:build js

package main

import (
	"io/fs"
	"syscall/js"

	"github.com/vovakirdan/takeoff-arcade/internal/platform/pixel"
)

// assetFS fetches sprites relative to the page URL, so the root "." is the
// directory the page was served from.
func assetFS(root string) fs.FS {
	if root == "" {
		root = "."
	}
	page := js.Global().Get("location").Get("href")
	base := js.Global().Get("URL").New(root+"/", page).Get("href").String()
	return pixel.NewRemoteFS(base)
}
