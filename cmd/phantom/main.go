// Command phantom answers design queries from the command line and
// imports tabular datasets into SQL.
//
//	phantom design -modulus 42.5 [-family EF10] [-json]
//	phantom families [-json]
//	phantom import -in phantoms.xlsx -to sqlite -db phantoms.db
//
// Dataset flags (-driver, -data, -dsn) default to the PHANTOM_* environment.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/phantomkit/config"
	"github.com/katalvlaran/phantomkit/dataset"
	"github.com/katalvlaran/phantomkit/design"
	"github.com/katalvlaran/phantomkit/sample"
)

var errUsage = errors.New("usage: phantom design|families|import [flags]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "phantom:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: cfg.LogLevel}))

	switch args[0] {
	case "design":
		return runDesign(ctx, cfg, log, args[1:], stdout)
	case "families":
		return runFamilies(ctx, cfg, log, args[1:], stdout)
	case "import":
		return runImport(ctx, cfg, log, args[1:])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

// datasetFlags registers the shared dataset overrides on fs.
func datasetFlags(fs *flag.FlagSet, ds *config.Dataset) {
	fs.Func("driver", "dataset driver: file|s3|sqlite|postgres", func(v string) error {
		ds.Driver = config.Driver(v)
		return nil
	})
	fs.StringVar(&ds.Path, "data", ds.Path, "dataset file or sqlite database path")
	fs.StringVar(&ds.DSN, "dsn", ds.DSN, "postgres connection string")
	fs.StringVar(&ds.Table, "table", ds.Table, "SQL table name")
}

func loadDesigner(ctx context.Context, cfg config.Config, log *slog.Logger) (*design.Designer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	samples, err := dataset.Open(ctx, cfg.Dataset)
	if err != nil {
		return nil, err
	}

	return design.FromSamples(samples, []sample.Option{sample.WithFamilies(cfg.Families...)}, design.WithLogger(log))
}

func runDesign(ctx context.Context, cfg config.Config, log *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("design", flag.ContinueOnError)
	modulus := fs.Float64("modulus", 0, "target elastic modulus in kPa")
	family := fs.String("family", "", "force a material family")
	asJSON := fs.Bool("json", false, "print the outcome as JSON")
	datasetFlags(fs, &cfg.Dataset)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := loadDesigner(ctx, cfg, log)
	if err != nil {
		return err
	}
	var out design.Outcome
	if *family == "" {
		out, err = d.Design(*modulus)
	} else {
		out, err = d.DesignFamily(sample.Family(*family), *modulus)
	}
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	printOutcome(stdout, out)

	return nil
}

func printOutcome(w io.Writer, out design.Outcome) {
	if out.Recipe != nil {
		fmt.Fprintf(w, "Target %.2f kPa\n", out.Target)
		fmt.Fprintf(w, "  %s\n", out.Recipe.Instruction())
		fmt.Fprintf(w, "  predicted modulus %.2f kPa\n", out.Recipe.Achieved)
		if len(out.Candidates) > 1 {
			fmt.Fprintln(w, "  other covering families:")
			for _, c := range out.Candidates {
				if c.Family != out.Recipe.Family {
					fmt.Fprintf(w, "    %s\n", c.Instruction())
				}
			}
		}
		return
	}

	fmt.Fprintf(w, "Target %.2f kPa is outside every validated family range.\n", out.Target)
	gap := out.Gap
	if gap.Lower != nil {
		fmt.Fprintf(w, "  nearest below: %s\n", gap.Lower)
	} else {
		fmt.Fprintln(w, "  nearest below: none")
	}
	if gap.Upper != nil {
		fmt.Fprintf(w, "  nearest above: %s\n", gap.Upper)
	} else {
		fmt.Fprintln(w, "  nearest above: none")
	}
}

func runFamilies(ctx context.Context, cfg config.Config, log *slog.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("families", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print as JSON")
	datasetFlags(fs, &cfg.Dataset)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := loadDesigner(ctx, cfg, log)
	if err != nil {
		return err
	}
	infos := d.Families()
	if *asJSON {
		return json.NewEncoder(stdout).Encode(infos)
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FAMILY\tSAMPLES\tDIRECTION\tMODULUS kPa\tTHINNER %\tSTATUS")
	for _, fi := range infos {
		status := "usable"
		if fi.Excluded != "" {
			status = "excluded"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.2f-%.2f\t%.2f-%.2f\t%s\n",
			fi.Family, fi.Samples, fi.Direction,
			fi.ModulusMin, fi.ModulusMax,
			fi.ConcentrationMin, fi.ConcentrationMax, status)
	}

	return tw.Flush()
}

func runImport(ctx context.Context, cfg config.Config, log *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	in := fs.String("in", "", "CSV or XLSX file to import")
	to := fs.String("to", "sqlite", "target: sqlite|postgres")
	db := fs.String("db", "phantoms.db", "sqlite database path")
	dsn := fs.String("dsn", cfg.Dataset.PostgresDSN(), "postgres connection string")
	table := fs.String("table", cfg.Dataset.Table, "SQL table name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("%w: import needs -in", errUsage)
	}

	samples, err := dataset.ReadFile(*in)
	if err != nil {
		return err
	}
	// refuse to import what the designer would reject
	if _, err := sample.Load(samples, sample.WithFamilies(cfg.Families...)); err != nil {
		return err
	}

	driver, target := dataset.SQLiteDriver, *db
	switch *to {
	case "sqlite":
	case "postgres":
		driver, target = dataset.PostgresDriver, *dsn
	default:
		return fmt.Errorf("%w: unknown import target %q", errUsage, *to)
	}

	st, err := dataset.OpenSQL(ctx, driver, target, *table)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return err
	}
	if err := st.Save(ctx, samples); err != nil {
		return err
	}
	log.Info("dataset imported", "samples", len(samples), "target", *to, "table", *table)

	return nil
}
