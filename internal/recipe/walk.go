package recipe

import (
	"context"

	"github.com/vk/recipekit/internal/document"
)

// Parse walks one document tree and assembles the package recipe it
// describes. parentName is the fully-qualified name of the enclosing
// package when root is an inline sub-package tree, or "" for a top-level
// document. The walk is fail-fast: the first validation failure aborts the
// whole parse, including the enclosing package when the failure occurs
// inside a sub-package.
func Parse(ctx context.Context, root *document.Node, parentName string) (*PackageRecipe, error) {
	rec := &PackageRecipe{BuildSettings: NewBuildSettings()}

	// First pass: read scalar metadata and classify sub-trees. Everything
	// that needs the fully-qualified name as expansion context is deferred
	// until the name is known.
	var (
		settingsNodes   []*document.Node
		buildTypeNodes  []*document.Node
		configNodes     []*document.Node
		subPackageNodes []*document.Node
	)
	for _, child := range root.Children {
		switch child.Name {
		case "":
			return nil, validationErrorf(child.Location, "anonymous tags are not allowed at the package level")
		case "name":
			if err := assignString(&rec.Name, child); err != nil {
				return nil, err
			}
		case "description":
			if err := assignString(&rec.Description, child); err != nil {
				return nil, err
			}
		case "homepage":
			if err := assignString(&rec.Homepage, child); err != nil {
				return nil, err
			}
		case "copyright":
			if err := assignString(&rec.Copyright, child); err != nil {
				return nil, err
			}
		case "license":
			if err := assignString(&rec.License, child); err != nil {
				return nil, err
			}
		case "authors":
			vals, err := stringArray(child, false)
			if err != nil {
				return nil, err
			}
			rec.Authors = append(rec.Authors, vals...)
		case "x:ddoxFilterArgs":
			vals, err := stringArray(child, false)
			if err != nil {
				return nil, err
			}
			rec.DdoxFilterArgs = append(rec.DdoxFilterArgs, vals...)
		case "buildType":
			buildTypeNodes = append(buildTypeNodes, child)
		case "configuration":
			configNodes = append(configNodes, child)
		case "subPackage":
			subPackageNodes = append(subPackageNodes, child)
		default:
			settingsNodes = append(settingsNodes, child)
		}
	}

	if rec.Name == "" {
		return nil, &MissingFieldError{File: root.Location.File, Field: "name"}
	}
	fullName := rec.Name
	if parentName != "" {
		fullName = parentName + Separator + rec.Name
	}

	for _, n := range settingsNodes {
		if err := extractField(ctx, &rec.BuildSettings, n, fullName); err != nil {
			return nil, err
		}
	}

	for _, n := range buildTypeNodes {
		name, err := singleString(n, true)
		if err != nil {
			return nil, err
		}
		bt := NewBuildSettings()
		if err := extractInto(ctx, &bt, n, fullName); err != nil {
			return nil, err
		}
		if rec.BuildTypes == nil {
			rec.BuildTypes = make(map[string]BuildSettings)
		}
		rec.BuildTypes[name] = bt
	}

	// Configurations inherit the recipe's effective target type; a recipe
	// that left it at "autodetect" defaults them to "library".
	configTarget := rec.BuildSettings.TargetType
	if configTarget == TargetAutodetect {
		configTarget = TargetLibrary
	}
	for _, n := range configNodes {
		conf, err := parseConfiguration(ctx, n, configTarget, fullName)
		if err != nil {
			return nil, err
		}
		rec.Configurations = append(rec.Configurations, conf)
	}

	for _, n := range subPackageNodes {
		sub, err := parseSubPackage(ctx, n, fullName)
		if err != nil {
			return nil, err
		}
		rec.SubPackages = append(rec.SubPackages, sub)
	}

	return rec, nil
}

// parseConfiguration reads one named configuration: the node's own value is
// the configuration name, "platforms" children accumulate the platform
// list, and every other child is an ordinary settings field.
func parseConfiguration(ctx context.Context, n *document.Node, defaultTarget TargetType, enclosingName string) (Configuration, error) {
	name, err := singleString(n, true)
	if err != nil {
		return Configuration{}, err
	}
	conf := Configuration{Name: name, BuildSettings: NewBuildSettings()}
	conf.BuildSettings.TargetType = defaultTarget
	for _, child := range n.Children {
		if child.Name == "platforms" {
			vals, verr := stringArray(child, false)
			if verr != nil {
				return Configuration{}, verr
			}
			conf.Platforms = append(conf.Platforms, vals...)
			continue
		}
		if err := extractField(ctx, &conf.BuildSettings, child, enclosingName); err != nil {
			return Configuration{}, err
		}
	}
	return conf, nil
}

// parseSubPackage reads one sub-package declaration: a bare string value is
// a path reference to an external recipe document, a block recurses into
// Parse with the enclosing qualified name as parent.
func parseSubPackage(ctx context.Context, n *document.Node, fullName string) (SubPackage, error) {
	if len(n.Values) > 0 {
		path, err := singleString(n, false)
		if err != nil {
			return SubPackage{}, err
		}
		if len(n.Attributes) > 0 {
			return SubPackage{}, validationErrorf(n.Location, "a path-based subPackage does not allow attributes")
		}
		return SubPackage{Path: path}, nil
	}
	sub, err := Parse(ctx, n, fullName)
	if err != nil {
		return SubPackage{}, err
	}
	return SubPackage{Recipe: sub}, nil
}
