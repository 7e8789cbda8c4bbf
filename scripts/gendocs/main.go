// Package main provides a generator that renders the registered rule
// schemas as markdown documentation.
//
// Usage:
//
//	go run ./scripts/gendocs -outdir=docs/rules
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lintwell/esconf/pkg/rules/es6" // register rule schemas
	"github.com/lintwell/esconf/pkg/schema"
)

var outDirFlag = flag.String("outdir", "docs/rules", "output directory")

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDirFlag, 0750); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	schemas := schema.All()
	for _, s := range schemas {
		path := filepath.Join(*outDirFlag, s.ID+".md")
		if err := os.WriteFile(path, []byte(renderRule(s)), 0600); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
	}

	indexPath := filepath.Join(*outDirFlag, "README.md")
	if err := os.WriteFile(indexPath, []byte(renderIndex(schemas)), 0600); err != nil {
		log.Fatalf("failed to write %s: %v", indexPath, err)
	}

	log.Printf("Generated %d rule pages in %s", len(schemas), *outDirFlag)
}

func renderRule(s *schema.Schema) string {
	info := schema.GetInfo(s)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", info.ID)
	fmt.Fprintf(&b, "**Group:** %s | [Upstream documentation](%s)\n\n", info.Group, info.DocURL)
	fmt.Fprintf(&b, "%s\n\n", info.Description)

	if info.Deprecated {
		if len(info.ReplacedBy) > 0 {
			fmt.Fprintf(&b, "> **Deprecated.** Use `%s` instead.\n\n", strings.Join(info.ReplacedBy, "`, `"))
		} else {
			b.WriteString("> **Deprecated.**\n\n")
		}
	}
	if info.Recommended {
		b.WriteString("Included in the recommended set.\n\n")
	}
	if info.Fixable != "" {
		fmt.Fprintf(&b, "Fixable: %s\n\n", info.Fixable)
	}

	if len(info.Variants) > 0 {
		b.WriteString("## Option Variants\n\n")
		for _, v := range info.Variants {
			fmt.Fprintf(&b, "- `%s`\n", v)
		}
		b.WriteString("\n")
	}
	if len(info.ConfigKeys) > 0 {
		b.WriteString("## Configuration Keys\n\n")
		fmt.Fprintf(&b, "`%s`\n", strings.Join(info.ConfigKeys, "`, `"))
	}

	return b.String()
}

func renderIndex(schemas []*schema.Schema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rules (%d)\n", len(schemas))

	for _, group := range schema.Groups() {
		fmt.Fprintf(&b, "\n## %s\n\n", group)
		for _, s := range schema.ByGroup(group) {
			fmt.Fprintf(&b, "- [%s](%s.md) - %s\n", s.ID, s.ID, s.Description)
		}
	}
	return b.String()
}
