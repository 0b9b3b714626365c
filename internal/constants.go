package internal

const (
	// ApplicationName is the non-capitalized name of the application (do not change this)
	ApplicationName = "advise"

	// UpdateURL is the location the latest released version is published at
	UpdateURL = "https://toolbox-data.advise-tools.dev/advise/releases/latest/VERSION"
)
