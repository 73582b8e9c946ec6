package growthstd

import (
	"bytes"
	_ "embed"
)

//go:embed data/who_weight_for_height.json
var embeddedDataset []byte

// LoadEmbedded builds a Resolver from the dataset compiled into the binary.
// Deployments that cannot reach blob storage always have this fallback.
func LoadEmbedded() (*Resolver, error) {
	return Load(bytes.NewReader(embeddedDataset))
}
