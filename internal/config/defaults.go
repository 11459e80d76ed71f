package config

import (
	_ "embed"
)

//go:embed defaults/birb.yaml
var defaultBirbYAML []byte
