package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"cmakefmt/internal/cst"
	"cmakefmt/internal/diag"
	"cmakefmt/internal/format"
	"cmakefmt/internal/lexer"
	"cmakefmt/internal/observ"
	"cmakefmt/internal/parser"
	"cmakefmt/internal/source"
	"cmakefmt/internal/trace"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrSyntax marks files left untouched because they have lexical errors.
var ErrSyntax = errors.New("source has syntax errors")

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check          bool // report only, never write
	Stdout         bool // return formatted bytes instead of writing
	AllowErrors    bool // format files with lexical errors too
	Verify         bool // run the round-trip checks on every output
	MaxDiagnostics int
	Jobs           int
	Options        format.Options
	Cache          *DiskCache
	Progress       ProgressSink
	Timer          *observ.Timer
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool // skipped: the disk cache knows the content is formatted
	Err       error
	Formatted []byte
	FileSet   *source.FileSet
	Bag       *diag.Bag
}

// FormatPaths formats provided files or directories (recursively collecting
// CMakeLists.txt and *.cmake files). With opts.Check files are not modified
// and Changed says whether formatting would update them. With opts.Stdout
// the formatted content is returned in the results.
//
// A failure on one file is recorded in its result and does not stop the
// others; the returned error is reserved for collection and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "fmt", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	idx := opts.Timer.Begin("collect")
	files, err := collectSourceFiles(ctx, paths)
	opts.Timer.End(idx, strconv.Itoa(len(files))+" files")
	if err != nil {
		span.End(err.Error())
		return nil, fmt.Errorf("format: %w", err)
	}
	if len(files) == 0 {
		span.End("no files")
		return nil, errors.New("format: no CMake files found")
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	results := make([]FormatResult, len(files))
	for i, path := range files {
		results[i].Path = path
	}
	err = forEachFile(ctx, files, opts.Jobs, func(ctx context.Context, i int, path string) error {
		results[i] = formatPath(ctx, path, opts)
		return nil
	})
	changed := 0
	for _, r := range results {
		if r.Changed {
			changed++
		}
	}
	span.WithExtra("files", strconv.Itoa(len(files))).WithExtra("changed", strconv.Itoa(changed))
	if err != nil {
		span.End(err.Error())
		return results, err
	}
	span.End("")
	return results, nil
}

// FormatFiles returns the list of files FormatPaths would process.
func FormatFiles(ctx context.Context, paths []string) ([]string, error) {
	return collectSourceFiles(ctx, paths)
}

// FormatSource formats an in-memory script (stdin). Nothing is written.
func FormatSource(ctx context.Context, name string, src []byte, opts FormatOptions) FormatResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	res := formatLoaded(ctx, fs, fs.Get(id), src, opts, trace.CurrentSpan(ctx))
	res.Path = name
	return res
}

func formatPath(ctx context.Context, path string, opts FormatOptions) (res FormatResult) {
	started := time.Now()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file:"+path, trace.CurrentSpan(ctx))
	defer func() {
		span.WithExtra("changed", strconv.FormatBool(res.Changed))
		if res.Cached {
			span.WithExtra("cached", "true")
		}
		detail := ""
		if res.Err != nil {
			detail = res.Err.Error()
		}
		span.End(detail)

		evt := Event{File: path, Stage: StageWrite, Status: StatusUnchanged, Err: res.Err, Elapsed: time.Since(started)}
		switch {
		case res.Err != nil:
			evt.Status = StatusError
		case res.Changed:
			evt.Status = StatusReformatted
		}
		emit(opts.Progress, evt)
	}()

	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return FormatResult{Path: path, Err: fmt.Errorf("format: %w", err)}
	}
	sf := fs.Get(id)
	raw := sf.Content
	if sf.Flags&source.FileHadBOM != 0 {
		raw = append(append([]byte(nil), utf8BOM...), sf.Content...)
	}

	res = formatLoaded(ctx, fs, sf, raw, opts, span.ID())
	res.Path = path
	if res.Err != nil || !res.Changed || opts.Check || opts.Stdout {
		return res
	}

	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
	t0 := time.Now()
	if err := writeFile(path, res.Formatted); err != nil {
		res.Err = fmt.Errorf("format: %w", err)
		diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOWriteFileError, source.Span{File: id}, err.Error()).Emit()
		return res
	}
	opts.Timer.Add("write", time.Since(t0))
	if res.Bag == nil || !res.Bag.HasErrors() {
		rememberClean(opts, path, res.Formatted)
	}
	return res
}

// formatLoaded runs lex, parse and format over an already loaded file. raw
// is the exact original byte content used for change detection.
func formatLoaded(ctx context.Context, fs *source.FileSet, sf *source.File, raw []byte, opts FormatOptions, parent uint64) FormatResult {
	tracer := trace.FromContext(ctx)
	res := FormatResult{Path: sf.Path, FileSet: fs}

	if opts.Cache != nil && !opts.Verify {
		var payload CachePayload
		if ok, err := opts.Cache.Get(cacheKey(raw, opts.Options.Fingerprint()), &payload); err == nil && ok && payload.Clean {
			res.Cached = true
			if opts.Stdout {
				res.Formatted = raw
			}
			trace.Point(tracer, trace.ScopePass, "cache-hit", sf.Path, parent)
			return res
		}
	}

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)
	res.Bag = bag
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	emit(opts.Progress, Event{File: sf.Path, Stage: StageParse, Status: StatusWorking})
	t0 := time.Now()
	pass := trace.Begin(tracer, trace.ScopePass, "parse", parent)
	tree := parseWith(sf, bag, rep)
	pass.End("")
	opts.Timer.Add("parse", time.Since(t0))
	if n := rep.Suppressed(); n > 0 {
		trace.Point(tracer, trace.ScopePass, "dedup", fmt.Sprintf("%s: %d", sf.Path, n), parent)
	}

	if bag.HasErrors() && !opts.AllowErrors {
		res.Err = fmt.Errorf("format: %s: %w", sf.Path, ErrSyntax)
		return res
	}

	emit(opts.Progress, Event{File: sf.Path, Stage: StageFormat, Status: StatusWorking})
	t1 := time.Now()
	pass = trace.Begin(tracer, trace.ScopePass, "format", parent)
	out := format.Format(tree, opts.Options)
	if sf.Flags&source.FileHadBOM != 0 && len(out) > 0 {
		out = append(append([]byte(nil), utf8BOM...), out...)
	}
	pass.End("")
	opts.Timer.Add("format", time.Since(t1))

	if opts.Verify {
		t2 := time.Now()
		verifyOutput(sf, tree, out, opts.Options, rep)
		opts.Timer.Add("verify", time.Since(t2))
	}

	res.Formatted = out
	res.Changed = !bytes.Equal(raw, out)
	// файлы с ошибками лексера не кэшируем: иначе попадание в кэш обойдёт ErrSyntax
	if !res.Changed && !bag.HasErrors() {
		rememberClean(opts, sf.Path, out)
	}
	return res
}

func parseWith(sf *source.File, bag *diag.Bag, rep diag.Reporter) *cst.Node {
	lx := lexer.New(sf, lexer.Options{Reporter: rep})
	return parser.ParseFile(lx, parser.Options{Reporter: rep, MaxErrors: uint(bag.Cap())}).Tree
}

func rememberClean(opts FormatOptions, path string, content []byte) {
	if opts.Cache == nil {
		return
	}
	fp := opts.Options.Fingerprint()
	// ошибки кэша не влияют на результат форматирования
	_ = opts.Cache.Put(cacheKey(content, fp), &CachePayload{
		Path:        path,
		Size:        len(content),
		Clean:       true,
		Fingerprint: fp,
	})
}

func writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode.Perm())
}
