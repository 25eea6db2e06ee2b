package serialization

// Format constants.
const (
	// Ext is the conventional file extension for persisted models.
	// WriteFile appends it when the given path does not already end in it.
	Ext = ".chisei"

	// MagicBytes opens every model file.
	MagicBytes = "CS"

	// MaxLayers bounds the declared layer count so a corrupted header
	// cannot drive allocation size. Real topologies are far smaller.
	MaxLayers = 1 << 16

	// MaxLayerSize bounds a single declared layer width.
	MaxLayerSize = 1 << 24
)
