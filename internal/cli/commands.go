package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/recipekit/internal/document"
	"github.com/vk/recipekit/internal/recipe"
)

// newParseCmd parses one recipe document tree and prints the canonical
// recipe model as JSON.
func newParseCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <document>",
		Short: "Parse a recipe document and print the canonical recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.LoadFile(args[0])
			if err != nil {
				return err
			}
			rec, err := recipe.Parse(cmd.Context(), doc, "")
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, string(out))
			return nil
		},
	}
}

// newVersionsCmd lists a package's published versions.
func newVersionsCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "versions <package>",
		Short: "List the published versions of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := s.client()
			if err != nil {
				return err
			}
			versions, err := client.ListVersions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, v := range versions {
				fmt.Fprintln(s.out, v.Original())
			}
			return nil
		},
	}
}

// newRecipeCmd fetches the recipe of the best version matching a constraint.
func newRecipeCmd(s *state) *cobra.Command {
	var prerelease bool
	cmd := &cobra.Command{
		Use:   "recipe <package> [constraint]",
		Short: "Fetch the recipe of the best matching version",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			constraint := ""
			if len(args) == 2 {
				constraint = args[1]
			}
			client, err := s.client()
			if err != nil {
				return err
			}
			raw, err := client.FetchRecipe(cmd.Context(), args[0], constraint, prerelease)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, string(raw))
			return nil
		},
	}
	cmd.Flags().BoolVar(&prerelease, "prerelease", false, "Consider prerelease versions.")
	return cmd
}

// newDownloadCmd downloads a release artifact to disk.
func newDownloadCmd(s *state) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "download <package> <version>",
		Short: "Download a package's release artifact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, version := args[0], args[1]
			dest := output
			if dest == "" {
				dest = strings.ReplaceAll(pkg, recipe.Separator, "_") + "-" + version + ".zip"
			}
			client, err := s.client()
			if err != nil {
				return err
			}
			f, err := os.Create(dest)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := client.FetchArtifact(cmd.Context(), pkg, version, f); err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Saved %s %s to %s\n", pkg, version, dest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default: <package>-<version>.zip).")
	return cmd
}
