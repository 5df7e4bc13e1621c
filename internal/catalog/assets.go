package catalog

import (
	"path"
	"strings"

	"gadgetfind/internal/domain"
)

// FallbackAssetName is used for non-empty references that match no known asset
const FallbackAssetName = "glitch.png"

// knownAssets maps an asset file name to its swatch
var knownAssets = map[string]domain.Asset{
	"glitch.png":      {Name: "glitch.png", Label: "glitch", Color: "#BB86FC"},
	"Gameboy XL.png":  {Name: "Gameboy XL.png", Label: "gameboy", Color: "#03DAC6"},
	"RGB Glasses.png": {Name: "RGB Glasses.png", Label: "rgb", Color: "#CF6679"},
	"image (1).png":   {Name: "image (1).png", Label: "image", Color: "#F2C94C"},
}

// PlaceholderAsset is drawn when an item has no image
var PlaceholderAsset = domain.Asset{Label: "no image", Color: "#1E1E1E", Placeholder: true}

// ResolveAsset maps a raw reference to a swatch. Empty refs become the placeholder.
func ResolveAsset(ref string) domain.Asset {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return PlaceholderAsset
	}
	if asset, ok := knownAssets[path.Base(ref)]; ok {
		return asset
	}
	return knownAssets[FallbackAssetName]
}
