package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"laudos/internal"
	"laudos/internal/catalog"
	"laudos/internal/config"
	"laudos/internal/intake"
	"laudos/internal/pipeline"
	"laudos/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "templates:import":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", "", "directory of template documents (defaults to TEMPLATES_DIR)")
		report := fs.String("report", "", "optional xlsx audit report path")
		_ = fs.Parse(os.Args[2:])

		paths := fs.Args()
		if len(paths) == 0 {
			root := *dir
			if strings.TrimSpace(root) == "" {
				root = cfg.TemplatesDir
			}
			paths, err = collectDocuments(root)
			must(err)
		}
		if len(paths) == 0 {
			must(fmt.Errorf("no template documents to import"))
		}

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		svc := pipeline.NewService(db, cfg)
		result, err := svc.ImportDocuments(paths)
		must(err)
		if *report != "" {
			must(pipeline.ExportReportToXLSX(svc.LastReport(), *report))
		}
		fmt.Printf("import done files=%d imported=%d skipped=%d\n", len(paths), result.Imported, result.Skipped)

	case "templates:dedupe":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		report := fs.String("report", "", "optional xlsx audit report path")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		svc := pipeline.NewService(db, cfg)
		result, err := svc.RunDeduplication()
		must(err)

		out := *report
		if out == "" && cfg.DedupeAutoExport {
			out = filepath.Join(cfg.OutputDir, "dedupe-report.xlsx")
		}
		if out != "" {
			must(pipeline.ExportReportToXLSX(svc.LastReport(), out))
		}
		fmt.Printf("dedupe done deleted=%d ids=%v\n", len(result.Deleted), result.Deleted)

	case "catalog:regions":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		modality := fs.String("modality", "", "modality code (RX, TC, RM, US, MG)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*modality) == "" {
			must(fmt.Errorf("--modality is required"))
		}

		idx, err := buildIndex(cfg)
		must(err)
		for _, group := range idx.RegionsFor(*modality) {
			fmt.Printf("%s (%d)\n", group.RegionName, len(group.Exams))
			for _, exam := range group.Exams {
				fmt.Printf("  %s\n", exam.Name)
			}
		}

	case "catalog:search":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		modality := fs.String("modality", "", "modality code")
		query := fs.String("query", "", "substring query")
		region := fs.String("region", "", "optional region restriction")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*modality) == "" || strings.TrimSpace(*query) == "" {
			must(fmt.Errorf("--modality and --query are required"))
		}

		idx, err := buildIndex(cfg)
		must(err)
		results := idx.Search(*modality, *query, *region)
		if len(results) > cfg.SearchLimit {
			results = results[:cfg.SearchLimit]
		}
		printEntries(results)
		fmt.Printf("search done matches=%d\n", len(results))

	case "catalog:suggest":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		modality := fs.String("modality", "", "modality code")
		query := fs.String("query", "", "partial exam name")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*modality) == "" || strings.TrimSpace(*query) == "" {
			must(fmt.Errorf("--modality and --query are required"))
		}

		idx, err := buildIndex(cfg)
		must(err)
		printEntries(idx.Suggest(*modality, *query, cfg.SuggestLimit))

	case "resolve":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		modality := fs.String("modality", "", "modality code")
		name := fs.String("name", "", "free-text exam name")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*modality) == "" || strings.TrimSpace(*name) == "" {
			must(fmt.Errorf("--modality and --name are required"))
		}

		idx, err := buildIndex(cfg)
		must(err)
		resolved := intake.NewResolver(idx).ResolveFreeText(*modality, *name)
		fmt.Printf("exam=%q modality=%s region=%q laterality=%s\n",
			resolved.ExamName, resolved.Modality, resolved.RegionName, lateralityLabel(resolved.Laterality))

	default:
		usage()
		os.Exit(1)
	}
}

func buildIndex(cfg config.Config) (*catalog.Index, error) {
	entries, err := catalog.LoadEntries(cfg.CatalogSeedPath)
	if err != nil {
		return nil, err
	}
	return catalog.BuildIndex(entries), nil
}

func collectDocuments(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".txt", ".pdf", ".html", ".htm":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func printEntries(entries []internal.CatalogEntry) {
	for _, entry := range entries {
		lat := ""
		if entry.HasLaterality {
			lat = " [lateral]"
		}
		fmt.Printf("%s | %s%s\n", entry.RegionName, entry.Name, lat)
	}
}

func lateralityLabel(side internal.Laterality) string {
	if side == internal.SideNone {
		return "none"
	}
	return side.String()
}

func usage() {
	fmt.Println("usage: laudos <command> [flags]")
	fmt.Println("  templates:import [--dir path|files...] [--report out.xlsx]")
	fmt.Println("  templates:dedupe [--report out.xlsx]")
	fmt.Println("  catalog:regions --modality RX")
	fmt.Println("  catalog:search --modality RX --query tórax [--region Tórax]")
	fmt.Println("  catalog:suggest --modality TC --query abd")
	fmt.Println("  resolve --modality US --name \"USG Ombro Direito\"")
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
