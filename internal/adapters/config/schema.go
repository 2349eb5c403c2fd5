package config

// File is the structure of hpwbuild.yaml. Pointer and empty fields leave the
// corresponding default in place.
type File struct {
	Tool     string     `yaml:"tool"`
	Jobs     *int       `yaml:"jobs"`
	Debug    *bool      `yaml:"debug"`
	Scripts  ScriptsDTO `yaml:"scripts"`
	Cleanup  string     `yaml:"cleanup"`
	Binary   string     `yaml:"binary"`
	Version  VersionDTO `yaml:"version"`
	BuildLog string     `yaml:"buildLog"`
}

// ScriptsDTO names the build descriptions handed to the build tool.
type ScriptsDTO struct {
	Primary string `yaml:"primary"`
	Plugin  string `yaml:"plugin"`
}

// VersionDTO configures the version stamp.
type VersionDTO struct {
	Base string `yaml:"base"`
	File string `yaml:"file"`
}
