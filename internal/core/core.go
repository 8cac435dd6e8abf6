package core

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"patterns/internal/clock"
	"patterns/internal/command"
	"patterns/internal/discount"
	"patterns/internal/editor"
	"patterns/internal/journal"
	"patterns/internal/log"
	"patterns/internal/parser"
	"patterns/internal/sorting"
	"patterns/pkg/product"
)

// DemoOptions controls what RunDemo exercises.
type DemoOptions struct {
	Subscribers []string
	Discount    int
	Catalog     []product.Product
	Strategies  []sorting.Strategy
	Script      string             // editor script, see command.ParseScript
	Sections    []journal.Scenario // empty means all, in demo order
	Clock       clock.Clock
}

// DefaultDemoOptions reproduces the classic walkthrough: two customers and a
// 20% discount, price then popularity sorting, and the default editor script.
func DefaultDemoOptions() DemoOptions {
	return DemoOptions{
		Subscribers: []string{"Customer1", "Customer2"},
		Discount:    20,
		Catalog:     parser.DefaultCatalog(),
		Strategies:  []sorting.Strategy{sorting.ByPrice{}, sorting.ByPopularity{}},
		Script:      command.DefaultScript,
	}
}

// RunDemo runs the observer, strategy and command sections in order, writing
// narration to w. It returns the transcript of every reported event.
func RunDemo(ctx context.Context, w io.Writer, opts DemoOptions) ([]journal.Entry, error) {
	rec := journal.NewRecorder(opts.Clock)
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	sections := map[journal.Scenario]func() error{
		journal.ScenarioObserver: func() error { return runObserver(w, rec, opts) },
		journal.ScenarioStrategy: func() error { return runStrategy(w, rec, opts) },
		journal.ScenarioCommand:  func() error { return runCommand(ctx, w, rec, opts) },
	}

	for _, s := range journal.Scenarios() {
		if len(opts.Sections) > 0 && !slices.Contains(opts.Sections, s) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return rec.Entries(), err
		}
		fmt.Fprintf(w, "\n%s\n", heading.Render("--- "+sectionTitle(s)+" ---"))
		log.Info(log.CatCommand, "demo section", "scenario", s)
		if err := sections[s](); err != nil {
			return rec.Entries(), fmt.Errorf("%s section: %w", s, err)
		}
	}
	return rec.Entries(), nil
}

func sectionTitle(s journal.Scenario) string {
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// recordedSubscriber prints like a discount.Subscriber and also journals the
// notification.
type recordedSubscriber struct {
	*discount.Subscriber
	rec *journal.Recorder
}

func (s recordedSubscriber) Update(d int) {
	s.Subscriber.Update(d)
	s.rec.Record(journal.ScenarioObserver, "notify", fmt.Sprintf("%s: %d%%", s.Name, d))
}

func runObserver(w io.Writer, rec *journal.Recorder, opts DemoOptions) error {
	n := discount.NewNotifier()
	for _, name := range opts.Subscribers {
		n.Add(recordedSubscriber{Subscriber: discount.NewSubscriber(name, w), rec: rec})
	}
	if n.Len() == 0 {
		fmt.Fprintln(w, "No subscribers registered.")
	}
	n.SetDiscount(opts.Discount)
	return nil
}

func runStrategy(w io.Writer, rec *journal.Recorder, opts DemoOptions) error {
	if len(opts.Strategies) == 0 {
		return sorting.ErrNoStrategy
	}
	sorter := sorting.NewSorter(opts.Strategies[0])
	for _, s := range opts.Strategies {
		sorter.SetStrategy(s)
		sorted, err := sorter.SortProducts(opts.Catalog)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "Sorting products by %s.\n", s.Name())
		names := make([]string, len(sorted))
		for i, p := range sorted {
			fmt.Fprintf(w, "  %s\n", p.String())
			names[i] = p.Name
			log.Debug(log.CatSorting, "product ranked", "strategy", s.Name(), "rank", i+1, "id", p.Hash())
		}
		rec.Record(journal.ScenarioStrategy, "sort", s.Name()+": "+strings.Join(names, ", "))
	}
	return nil
}

func runCommand(ctx context.Context, w io.Writer, rec *journal.Recorder, opts DemoOptions) error {
	buf := editor.New(
		editor.WithClock(opts.Clock),
		editor.WithListener(editor.NewPrinter(w)),
		editor.WithListener(rec),
	)
	cmds, err := command.ParseScript(strings.NewReader(opts.Script), buf)
	if err != nil {
		return err
	}
	inv := &command.Invoker{}
	if err := inv.Run(ctx, cmds...); err != nil {
		return err
	}
	log.Info(log.CatCommand, "script finished", "commands", len(inv.Executed()), "content_len", len(buf.Content()))
	return nil
}
