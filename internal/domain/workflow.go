package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"prism.dev/pkg/prism/internal/adapter"
	"prism.dev/pkg/prism/internal/controller"
	m "prism.dev/pkg/prism/internal/model"
	pkg "prism.dev/pkg/prism/pkg"
)

// AnalyzeArgs contains the arguments for a batch analysis run.
type AnalyzeArgs struct {
	Paths       []m.Path
	Exclude     []string
	Reports     m.Path
	Threads     int
	MaxFileSize int64
	Format      string
	External    bool
}

// ListArgs contains the arguments for listing discovered documents.
type ListArgs struct {
	Paths       []m.Path
	Exclude     []string
	MaxFileSize int64
}

// ViewArgs contains the arguments for viewing a saved report.
type ViewArgs struct {
	Reports m.Path
	NameA   string
	NameB   string
}

// DiffArgs contains the arguments for diffing two documents.
type DiffArgs struct {
	PathA m.Path
	PathB m.Path
}

// Workflow defines the batch driver around the pure pair engine.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	adapter.ContentFSAdapter
	adapter.ReportStore
	adapter.ExternalScanner
	controller.UI
}

// NewWorkflow creates a Workflow wired with the provided adapters.
func NewWorkflow(
	content adapter.ContentFSAdapter,
	reportStore adapter.ReportStore,
	scanner adapter.ExternalScanner,
	ui controller.UI,
) Workflow {
	return &workflow{
		ContentFSAdapter: content,
		ReportStore:      reportStore,
		ExternalScanner:  scanner,
		UI:               ui,
	}
}

// loadedDocument pairs a document with the path it came from.
type loadedDocument struct {
	Doc  m.Document
	Path m.Path
}

// Analyze collects documents under the given paths, evaluates every
// unordered pair, saves the report and displays the results.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	docs, err := w.collectDocuments(args.Paths, args.Exclude, args.MaxFileSize)
	if err != nil {
		return fmt.Errorf("collect documents: %w", err)
	}

	if len(docs) < 2 {
		return fmt.Errorf("need at least two documents, found %d", len(docs))
	}

	if err := validateUniqueNames(docs); err != nil {
		return err
	}

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	results, err := w.compareAll(ctx, docs, args.Threads)
	if err != nil {
		return fmt.Errorf("compare pairs: %w", err)
	}

	if err := w.Save(args.Reports, results, args.Format); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	if args.External {
		w.runExternalScan(ctx, args.Paths, args.Reports)
	}

	if err := w.DisplayResults(ctx, results); err != nil {
		return err
	}

	w.DisplaySummary(ctx, results)

	return nil
}

// compareAll fans the C(N,2) pair evaluations out over an errgroup. Pairs
// are independent, so the only shared state is the spill collector and the
// progress counter.
func (w *workflow) compareAll(ctx context.Context, docs []loadedDocument, threads int) ([]m.PairResult, error) {
	total := len(docs) * (len(docs) - 1) / 2

	spill, err := pkg.NewFileSpill[m.PairResult]()
	if err != nil {
		return nil, err
	}

	defer func() { _ = spill.Close() }()

	var (
		group      errgroup.Group
		progressMu sync.Mutex
		done       int
	)

	if threads > 0 {
		group.SetLimit(threads)
	}

	for i := 0; i < len(docs); i++ {
		for j := i + 1; j < len(docs); j++ {
			a, b := docs[i].Doc, docs[j].Doc

			group.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				result := ComparePair(a, b)

				if err := spill.Append(result); err != nil {
					return err
				}

				progressMu.Lock()
				done++
				w.DisplayProgress(ctx, done, total, result.NameA+" vs "+result.NameB)
				progressMu.Unlock()

				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	results := make([]m.PairResult, 0, spill.Len())

	err = spill.Range(func(_ uint64, item m.PairResult) error {
		results = append(results, item)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].NameA != results[j].NameA {
			return results[i].NameA < results[j].NameA
		}

		return results[i].NameB < results[j].NameB
	})

	return results, nil
}

// List displays the documents a run would pick up, with their kinds and
// structural token counts.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	docs, err := w.collectDocuments(args.Paths, args.Exclude, args.MaxFileSize)
	if err != nil {
		return fmt.Errorf("collect documents: %w", err)
	}

	infos := make([]m.DocumentInfo, 0, len(docs))

	for _, doc := range docs {
		info := m.DocumentInfo{
			Name:       doc.Doc.Name,
			Path:       doc.Path,
			Kind:       doc.Doc.Kind,
			Structural: doc.Doc.Kind.StructurallyComparable(),
		}

		if info.Structural {
			info.Tokens = len(TokenizeStructural(doc.Doc.Content))
		}

		infos = append(infos, info)
	}

	return w.DisplayFiles(ctx, infos)
}

// View reloads a saved report and displays either the full table or one
// pair's detail.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	results, err := w.ReportStore.Load(args.Reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if args.NameA == "" && args.NameB == "" {
		if err := w.DisplayResults(ctx, results); err != nil {
			return err
		}

		w.DisplaySummary(ctx, results)

		return nil
	}

	nameA, nameB := args.NameA, args.NameB
	if nameB < nameA {
		nameA, nameB = nameB, nameA
	}

	for _, result := range results {
		if result.NameA == nameA && result.NameB == nameB {
			return w.DisplayPairDetail(ctx, result)
		}
	}

	return fmt.Errorf("pair %q, %q not found in report", args.NameA, args.NameB)
}

// Diff loads two documents, evaluates their pair, and displays the detail
// together with a unified diff of their comparable text.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	docA, err := w.ContentFSAdapter.Load(args.PathA)
	if err != nil {
		return err
	}

	docB, err := w.ContentFSAdapter.Load(args.PathB)
	if err != nil {
		return err
	}

	result := ComparePair(docA, docB)
	if err := w.DisplayPairDetail(ctx, result); err != nil {
		return err
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(docA.Content),
		B:        difflib.SplitLines(docB.Content),
		FromFile: docA.Name,
		ToFile:   docB.Name,
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("compute diff: %w", err)
	}

	return w.DisplayDiff(ctx, diff)
}

// collectDocuments walks the given paths and loads every supported file
// into a document. Files that fail to load are skipped with a warning so a
// single malformed submission cannot abort the batch.
func (w *workflow) collectDocuments(paths []m.Path, exclude []string, maxFileSize int64) ([]loadedDocument, error) {
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	excludePatterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	var docs []loadedDocument

	for _, root := range paths {
		err := w.Walk(root, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			if _, ok := w.DetectKind(m.Path(path)); !ok {
				return nil
			}

			if matchesAny(excludePatterns, path) {
				slog.Debug("excluded by pattern", "path", path)
				return nil
			}

			if maxFileSize > 0 && info.Size() > maxFileSize {
				slog.Warn("skipping oversized file", "path", path, "size", info.Size())
				return nil
			}

			doc, loadErr := w.ContentFSAdapter.Load(m.Path(path))
			if loadErr != nil {
				slog.Warn("skipping unreadable file", "path", path, "error", loadErr)
				return nil
			}

			docs = append(docs, loadedDocument{Doc: doc, Path: m.Path(path)})

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return docs, nil
}

// runExternalScan invokes the optional third-party scanner. Failures are
// reported but never abort the run.
func (w *workflow) runExternalScan(ctx context.Context, paths []m.Path, reports m.Path) {
	if w.ExternalScanner == nil || !w.Available() {
		slog.Warn("external scanner not available, skipping")
		return
	}

	for _, path := range paths {
		info, err := w.FileInfo(path)
		if err != nil || !info.IsDir() {
			continue
		}

		if err := w.Scan(ctx, path, reports); err != nil {
			slog.Warn("external scan failed", "path", path, "error", err)
		}
	}
}

func validateUniqueNames(docs []loadedDocument) error {
	seen := make(map[string]m.Path, len(docs))

	for _, doc := range docs {
		if prev, ok := seen[doc.Doc.Name]; ok {
			return fmt.Errorf("duplicate document name %q (%s and %s)", doc.Doc.Name, prev, doc.Path)
		}

		seen[doc.Doc.Name] = doc.Path
	}

	return nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(path) {
			return true
		}
	}

	return false
}
