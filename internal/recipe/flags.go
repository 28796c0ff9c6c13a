package recipe

// BuildRequirement is a bitmask of hard requirements a settings scope places
// on the build. Repeated occurrences of the buildRequirements field union
// into the existing mask for the same platform key.
type BuildRequirement uint

const (
	RequireAllowWarnings BuildRequirement = 1 << iota
	RequireSilenceWarnings
	RequireDisallowWarnings
	RequireSilenceDeprecations
	RequireDisallowDeprecations
	RequireBoundsCheck
	RequireContracts
	RequireRelaxProperties
	RequireNoDefaultFlags
)

var buildRequirementNames = map[string]BuildRequirement{
	"allowWarnings":        RequireAllowWarnings,
	"silenceWarnings":      RequireSilenceWarnings,
	"disallowWarnings":     RequireDisallowWarnings,
	"silenceDeprecations":  RequireSilenceDeprecations,
	"disallowDeprecations": RequireDisallowDeprecations,
	"requireBoundsCheck":   RequireBoundsCheck,
	"requireContracts":     RequireContracts,
	"relaxProperties":      RequireRelaxProperties,
	"noDefaultFlags":       RequireNoDefaultFlags,
}

// ParseBuildRequirement maps a requirement name to its flag bit, reporting
// whether the name is part of the enumeration.
func ParseBuildRequirement(s string) (BuildRequirement, bool) {
	r, ok := buildRequirementNames[s]
	return r, ok
}

// BuildOption is a bitmask of compiler-facing build options. Like
// BuildRequirement, repeated occurrences union per platform key.
type BuildOption uint

const (
	OptionDebugMode BuildOption = 1 << iota
	OptionReleaseMode
	OptionCoverage
	OptionDebugInfo
	OptionDebugInfoC
	OptionAlwaysStackFrame
	OptionStackStomping
	OptionInline
	OptionNoBoundsCheck
	OptionOptimize
	OptionProfile
	OptionUnittests
	OptionVerbose
	OptionIgnoreUnknownPragmas
	OptionSyntaxOnly
	OptionWarnings
	OptionWarningsAsErrors
	OptionIgnoreDeprecations
	OptionDeprecationWarnings
	OptionDeprecationErrors
	OptionProperty
	OptionProfileGC
	OptionPIC
	OptionBetterC
	OptionLowmem
)

var buildOptionNames = map[string]BuildOption{
	"debugMode":            OptionDebugMode,
	"releaseMode":          OptionReleaseMode,
	"coverage":             OptionCoverage,
	"debugInfo":            OptionDebugInfo,
	"debugInfoC":           OptionDebugInfoC,
	"alwaysStackFrame":     OptionAlwaysStackFrame,
	"stackStomping":        OptionStackStomping,
	"inline":               OptionInline,
	"noBoundsCheck":        OptionNoBoundsCheck,
	"optimize":             OptionOptimize,
	"profile":              OptionProfile,
	"unittests":            OptionUnittests,
	"verbose":              OptionVerbose,
	"ignoreUnknownPragmas": OptionIgnoreUnknownPragmas,
	"syntaxOnly":           OptionSyntaxOnly,
	"warnings":             OptionWarnings,
	"warningsAsErrors":     OptionWarningsAsErrors,
	"ignoreDeprecations":   OptionIgnoreDeprecations,
	"deprecationWarnings":  OptionDeprecationWarnings,
	"deprecationErrors":    OptionDeprecationErrors,
	"property":             OptionProperty,
	"profileGC":            OptionProfileGC,
	"pic":                  OptionPIC,
	"betterC":              OptionBetterC,
	"lowmem":               OptionLowmem,
}

// ParseBuildOption maps an option name to its flag bit, reporting whether
// the name is part of the enumeration.
func ParseBuildOption(s string) (BuildOption, bool) {
	o, ok := buildOptionNames[s]
	return o, ok
}
