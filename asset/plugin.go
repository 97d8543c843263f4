package asset

import (
	"os"

	"github.com/plus3/kiln/app"
	"github.com/plus3/kiln/errs"
)

// Assets is the world resource exposing the asset server to systems.
type Assets struct {
	Server *Server
}

// Plugin creates an asset server rooted at Root with the image loaders
// preregistered and inserts it as the Assets resource.
type Plugin struct {
	Root string
}

func (Plugin) Name() string {
	return "kiln:asset"
}

func (p Plugin) Build(a *app.App) error {
	root := p.Root
	if root == "" {
		root = "assets"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return errs.Wrap(errs.CategoryAsset, "creating asset root", err)
	}

	server, err := NewServer(root, WithLogger(a.Log()))
	if err != nil {
		return err
	}

	server.RegisterLoader(".png", ImageLoader)
	server.RegisterLoader(".jpg", ImageLoader)
	server.RegisterLoader(".jpeg", ImageLoader)

	app.InsertResource(a, Assets{Server: server})
	return nil
}
