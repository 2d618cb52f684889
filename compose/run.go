package compose

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"readmesvg/state"
)

// Run builds composite and writes it to configured destination.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compose")
	cfg := &env.Cfg.Composite

	if cmd.Args().Len() > 0 {
		log.Warn("Malformed command line, arguments are not expected", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	log.Debug("Composition starting", zap.String("assets", cfg.AssetsDir), zap.String("destination", cfg.Output),
		zap.Int("fragments", len(cfg.Fragments)))
	defer func(start time.Time) {
		log.Debug("Composition completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	comp, err := New(cfg, log).Compose(ctx)
	if err != nil {
		return err
	}
	storeInReport(env, comp)

	if err := WriteSVG(cfg.Output, comp); err != nil {
		return err
	}

	if cfg.Preview.Enable {
		if err := WritePreview(cfg.Preview.Destination, comp, cfg.Preview.Width); err != nil {
			// composite itself is fine, preview is only a convenience
			log.Warn("Unable to produce preview", zap.String("destination", cfg.Preview.Destination), zap.Error(err))
		} else {
			log.Info("Preview written", zap.String("destination", cfg.Preview.Destination))
		}
	}

	fmt.Fprintf(env.Out, "[ok] Built: %s\n", cfg.Output)
	fmt.Fprintf(env.Out, "  Total height : %dpx\n", comp.Height)
	fmt.Fprintf(env.Out, "  Total size   : %d chars\n", utf8.RuneCountInString(comp.Text))
	return nil
}

// PlanAction outputs composition plan without writing anything.
func PlanAction(ctx context.Context, _ *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	comp, err := New(&env.Cfg.Composite, env.Log.Named("compose")).Compose(ctx)
	if err != nil {
		return err
	}
	storeInReport(env, comp)

	_, err = fmt.Fprint(env.Out, Plan(comp))
	return err
}

func storeInReport(env *state.LocalEnv, comp *Composite) {
	if env.Rpt == nil {
		return
	}
	for i, sec := range comp.Sections {
		env.Rpt.StoreData(fmt.Sprintf("fragments/%02d-%s.svg", i, slug.Make(sec.Name)), sec.Data)
	}
	env.Rpt.StoreData("plan.txt", []byte(Plan(comp)))
	env.Rpt.StoreData("composite.svg", []byte(comp.Text))
}
