package recipe

import (
	"context"
	"strings"

	"github.com/vk/recipekit/internal/ctxlog"
	"github.com/vk/recipekit/internal/document"
)

// expandPackageName resolves a short-hand package reference (":sub") against
// the enclosing fully-qualified package name. Short-hand references are only
// valid inside top-level packages: once the enclosing name itself contains a
// separator there is no unambiguous expansion.
func expandPackageName(name, enclosing string, loc document.Location) (string, error) {
	if !strings.HasPrefix(name, Separator) {
		return name, nil
	}
	if strings.Contains(enclosing, Separator) {
		return "", validationErrorf(loc, "short-hand reference %q is not allowed inside sub-package %q", name, enclosing)
	}
	return enclosing + name, nil
}

// appendPlatform accumulates the node's string values into the platform-keyed
// list field m, creating the map and the key on first use. Values for one key
// keep document order and are never deduplicated.
func appendPlatform(m *map[string][]string, n *document.Node) error {
	vals, err := stringArray(n, false)
	if err != nil {
		return err
	}
	key, err := platformKey(n)
	if err != nil {
		return err
	}
	if *m == nil {
		*m = make(map[string][]string)
	}
	(*m)[key] = append((*m)[key], vals...)
	return nil
}

// unionPlatform parses each of the node's values as a named flag and ORs the
// result into the mask stored under the node's platform key.
func unionPlatform[T ~uint](m *map[string]T, n *document.Node, parse func(string) (T, bool)) error {
	names, err := stringArray(n, false)
	if err != nil {
		return err
	}
	var mask T
	for _, name := range names {
		flag, ok := parse(name)
		if !ok {
			return validationErrorf(n.Location, "field %q does not recognize flag %q", n.Name, name)
		}
		mask |= flag
	}
	key, err := platformKey(n)
	if err != nil {
		return err
	}
	if *m == nil {
		*m = make(map[string]T)
	}
	(*m)[key] |= mask
	return nil
}

// extractInto dispatches every immediate child of a settings scope into bs.
// enclosingName is the fully-qualified name of the package being parsed; it
// is the expansion context for short-hand references.
func extractInto(ctx context.Context, bs *BuildSettings, scope *document.Node, enclosingName string) error {
	for _, child := range scope.Children {
		if err := extractField(ctx, bs, child, enclosingName); err != nil {
			return err
		}
	}
	return nil
}

// extractField handles one recognized settings field. Unrecognized names
// fall through untouched so that recipes written for newer tools still
// parse.
func extractField(ctx context.Context, bs *BuildSettings, n *document.Node, enclosingName string) error {
	switch n.Name {
	case "dependency":
		return parseDependency(ctx, bs, n, enclosingName)
	case "subConfiguration":
		return parseSubConfiguration(bs, n, enclosingName)
	case "targetType":
		s, err := singleString(n, false)
		if err != nil {
			return err
		}
		t, ok := ParseTargetType(s)
		if !ok {
			return validationErrorf(n.Location, "unknown target type %q", s)
		}
		bs.TargetType = t
		return nil
	case "targetName":
		return assignString(&bs.TargetName, n)
	case "targetPath":
		return assignString(&bs.TargetPath, n)
	case "workingDirectory":
		return assignString(&bs.WorkingDirectory, n)
	case "systemDependencies":
		return assignString(&bs.SystemDependencies, n)
	case "mainSourceFile":
		return assignString(&bs.MainSourceFile, n)
	case "sourceFiles":
		return appendPlatform(&bs.SourceFiles, n)
	case "sourcePaths":
		return appendPlatform(&bs.SourcePaths, n)
	case "excludedSourceFiles":
		return appendPlatform(&bs.ExcludedSourceFiles, n)
	case "importPaths":
		return appendPlatform(&bs.ImportPaths, n)
	case "stringImportPaths":
		return appendPlatform(&bs.StringImportPaths, n)
	case "copyFiles":
		return appendPlatform(&bs.CopyFiles, n)
	case "dflags":
		return appendPlatform(&bs.DFlags, n)
	case "lflags":
		return appendPlatform(&bs.LFlags, n)
	case "libs":
		return appendPlatform(&bs.Libs, n)
	case "versions":
		return appendPlatform(&bs.Versions, n)
	case "debugVersions":
		return appendPlatform(&bs.DebugVersions, n)
	case "preGenerateCommands":
		return appendPlatform(&bs.PreGenerateCommands, n)
	case "postGenerateCommands":
		return appendPlatform(&bs.PostGenerateCommands, n)
	case "preBuildCommands":
		return appendPlatform(&bs.PreBuildCommands, n)
	case "postBuildCommands":
		return appendPlatform(&bs.PostBuildCommands, n)
	case "buildRequirements":
		return unionPlatform(&bs.BuildRequirements, n, ParseBuildRequirement)
	case "buildOptions":
		return unionPlatform(&bs.BuildOptions, n, ParseBuildOption)
	default:
		// Unknown fields are ignored for forward compatibility.
		return nil
	}
}

func assignString(dst *string, n *document.Node) error {
	s, err := singleString(n, false)
	if err != nil {
		return err
	}
	*dst = s
	return nil
}

// parseDependency translates one dependency declaration. A path attribute
// overrides any version constraint; the version is kept on the spec but the
// resolver will ignore it, which is surfaced as a logged note rather than a
// failure.
func parseDependency(ctx context.Context, bs *BuildSettings, n *document.Node, enclosingName string) error {
	if len(n.Values) == 0 {
		return validationErrorf(n.Location, "dependency is missing the package name")
	}
	token, ok := n.Values[0].Text()
	if !ok {
		return validationErrorf(n.Location, "dependency package name must be a string, got %s", n.Values[0].GoString())
	}
	name, err := expandPackageName(token, enclosingName, n.Location)
	if err != nil {
		return err
	}
	if _, exists := bs.Dependencies[name]; exists {
		return &DuplicateDependencyError{Location: n.Location, Name: name}
	}

	dep := DependencySpec{Version: VersionAny}

	version, hasVersion := n.Attribute("version")
	path, hasPath := n.Attribute("path")
	switch {
	case hasPath:
		p, pok := path.Text()
		if !pok {
			return validationErrorf(n.Location, "attribute \"path\" on dependency %q requires a string value", name)
		}
		dep.Path = p
		if hasVersion {
			if v, vok := version.Text(); vok {
				dep.Version = v
			}
			ctxlog.FromContext(ctx).Warn("Ignoring version specification for path-based dependency.",
				"dependency", name, "path", p, "location", n.Location.String())
		}
	case hasVersion:
		v, vok := version.Text()
		if !vok {
			return validationErrorf(n.Location, "attribute \"version\" on dependency %q requires a string value", name)
		}
		dep.Version = v
	default:
		return validationErrorf(n.Location, "dependency %q is missing a version specification", name)
	}

	if opt, hasOpt := n.Attribute("optional"); hasOpt {
		b, bok := opt.Boolean()
		if !bok {
			return validationErrorf(n.Location, "attribute \"optional\" on dependency %q requires a boolean value", name)
		}
		dep.Optional = b
	}

	if bs.Dependencies == nil {
		bs.Dependencies = make(map[string]DependencySpec)
	}
	bs.Dependencies[name] = dep
	return nil
}

// parseSubConfiguration stores the chosen configuration of one dependent
// package. The field carries exactly two string values: the dependency's
// package token and the configuration name.
func parseSubConfiguration(bs *BuildSettings, n *document.Node, enclosingName string) error {
	vals, err := stringArray(n, false)
	if err != nil {
		return err
	}
	if len(vals) != 2 {
		return validationErrorf(n.Location, "subConfiguration requires a package name and a configuration name, got %d values", len(vals))
	}
	name, err := expandPackageName(vals[0], enclosingName, n.Location)
	if err != nil {
		return err
	}
	if bs.SubConfigurations == nil {
		bs.SubConfigurations = make(map[string]string)
	}
	bs.SubConfigurations[name] = vals[1]
	return nil
}
