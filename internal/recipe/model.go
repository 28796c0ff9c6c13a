package recipe

// PackageName separators. A package name token starting with Separator is a
// short-hand reference relative to the enclosing top-level package.
const Separator = ":"

// VersionAny is the version constraint a dependency defaults to when no
// explicit constraint is required (path-based dependencies).
const VersionAny = "*"

// TargetType classifies what a package builds into.
type TargetType string

const (
	TargetAutodetect     TargetType = "autodetect"
	TargetNone           TargetType = "none"
	TargetExecutable     TargetType = "executable"
	TargetLibrary        TargetType = "library"
	TargetSourceLibrary  TargetType = "sourceLibrary"
	TargetDynamicLibrary TargetType = "dynamicLibrary"
	TargetStaticLibrary  TargetType = "staticLibrary"
	TargetObject         TargetType = "object"
)

var targetTypes = map[string]TargetType{
	string(TargetAutodetect):     TargetAutodetect,
	string(TargetNone):           TargetNone,
	string(TargetExecutable):     TargetExecutable,
	string(TargetLibrary):        TargetLibrary,
	string(TargetSourceLibrary):  TargetSourceLibrary,
	string(TargetDynamicLibrary): TargetDynamicLibrary,
	string(TargetStaticLibrary):  TargetStaticLibrary,
	string(TargetObject):         TargetObject,
}

// ParseTargetType maps a field value to its TargetType, reporting whether
// the name is part of the enumeration.
func ParseTargetType(s string) (TargetType, bool) {
	t, ok := targetTypes[s]
	return t, ok
}

// PackageRecipe is the canonical representation of one package's build
// configuration, independent of the source document format.
type PackageRecipe struct {
	Name           string                   `json:"name"`
	Description    string                   `json:"description,omitempty"`
	Homepage       string                   `json:"homepage,omitempty"`
	Authors        []string                 `json:"authors,omitempty"`
	Copyright      string                   `json:"copyright,omitempty"`
	License        string                   `json:"license,omitempty"`
	BuildSettings  BuildSettings            `json:"buildSettings"`
	Configurations []Configuration          `json:"configurations,omitempty"`
	BuildTypes     map[string]BuildSettings `json:"buildTypes,omitempty"`
	SubPackages    []SubPackage             `json:"subPackages,omitempty"`
	DdoxFilterArgs []string                 `json:"ddoxFilterArgs,omitempty"`
}

// Configuration is one named, platform-scoped bundle of build settings.
type Configuration struct {
	Name          string        `json:"name"`
	Platforms     []string      `json:"platforms,omitempty"`
	BuildSettings BuildSettings `json:"buildSettings"`
}

// SubPackage is a package nested inside another package's namespace. It is
// declared either by a path reference to an external recipe document or by
// an inline nested recipe; exactly one of the two fields is populated.
type SubPackage struct {
	Path   string         `json:"path,omitempty"`
	Recipe *PackageRecipe `json:"recipe,omitempty"`
}

// DependencySpec describes one declared dependency. When Path is set the
// dependency resolves to the local directory and Version is ignored by the
// resolver, even if one was declared.
type DependencySpec struct {
	Version  string `json:"version"`
	Path     string `json:"path,omitempty"`
	Optional bool   `json:"optional,omitempty"`
}

// BuildSettings holds every build-affecting field of one settings scope:
// the package root, one configuration, or one build-type profile.
//
// The map-valued fields are keyed by platform qualifier: the empty key
// holds unconditional values and "-<platform>" holds values guarded by a
// platform attribute. Values accumulate in document order and are never
// deduplicated or reordered.
type BuildSettings struct {
	TargetType         TargetType                `json:"targetType"`
	TargetName         string                    `json:"targetName,omitempty"`
	TargetPath         string                    `json:"targetPath,omitempty"`
	WorkingDirectory   string                    `json:"workingDirectory,omitempty"`
	SystemDependencies string                    `json:"systemDependencies,omitempty"`
	MainSourceFile     string                    `json:"mainSourceFile,omitempty"`
	Dependencies       map[string]DependencySpec `json:"dependencies,omitempty"`
	SubConfigurations  map[string]string         `json:"subConfigurations,omitempty"`

	SourceFiles          map[string][]string `json:"sourceFiles,omitempty"`
	SourcePaths          map[string][]string `json:"sourcePaths,omitempty"`
	ExcludedSourceFiles  map[string][]string `json:"excludedSourceFiles,omitempty"`
	ImportPaths          map[string][]string `json:"importPaths,omitempty"`
	StringImportPaths    map[string][]string `json:"stringImportPaths,omitempty"`
	CopyFiles            map[string][]string `json:"copyFiles,omitempty"`
	DFlags               map[string][]string `json:"dflags,omitempty"`
	LFlags               map[string][]string `json:"lflags,omitempty"`
	Libs                 map[string][]string `json:"libs,omitempty"`
	Versions             map[string][]string `json:"versions,omitempty"`
	DebugVersions        map[string][]string `json:"debugVersions,omitempty"`
	PreGenerateCommands  map[string][]string `json:"preGenerateCommands,omitempty"`
	PostGenerateCommands map[string][]string `json:"postGenerateCommands,omitempty"`
	PreBuildCommands     map[string][]string `json:"preBuildCommands,omitempty"`
	PostBuildCommands    map[string][]string `json:"postBuildCommands,omitempty"`

	BuildRequirements map[string]BuildRequirement `json:"buildRequirements,omitempty"`
	BuildOptions      map[string]BuildOption      `json:"buildOptions,omitempty"`
}

// NewBuildSettings returns an empty settings scope with the target type at
// its documented default.
func NewBuildSettings() BuildSettings {
	return BuildSettings{TargetType: TargetAutodetect}
}
