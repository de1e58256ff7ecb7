package assets

// AssetLoader defines the contract for loading style presets and samples.
type AssetLoader interface {
	// LoadStyle loads a YAML style preset by name (without .yaml extension).
	// Returns ErrStyleNotFound if the preset doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadSample loads a sample CSV source by name (without .csv extension).
	// Returns ErrSampleNotFound if the sample doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadSample(name string) (string, error)
}

// DefaultStyleName is the name of the built-in style preset.
const DefaultStyleName = "default"

// Sample names, one per document kind.
const (
	SampleLetter = "letter"
	SampleCV     = "cv"
)
