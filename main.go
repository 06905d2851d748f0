/*
objview loads Wavefront OBJ models and reports what it found in them.

	objview [-config objview.toml] [-strict] [-log-level debug] [-simplify 0.5] [-watch dir] [model ...]

Models are named by path or, when they live in the asset directory, by base
name. With no models given every model in the asset directory is loaded.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spaghettifunk/objview/engine/config"
	"github.com/spaghettifunk/objview/engine/core"
	"github.com/spaghettifunk/objview/engine/math"
	"github.com/spaghettifunk/objview/engine/renderer/metadata"
	"github.com/spaghettifunk/objview/engine/systems"
	"github.com/spaghettifunk/objview/engine/wavefront"
)

type options struct {
	configFile string
	watchDir   string
	logLevel   string
	strict     bool
	simplify   float64
}

var opts options

func init() {
	flag.StringVar(&opts.configFile, "config", "", "TOML configuration file")
	flag.StringVar(&opts.watchDir, "watch", "", "watch this directory and reload models as they change")
	flag.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	flag.BoolVar(&opts.strict, "strict", false, "reject faces that omit texture or normal indices")
	flag.Float64Var(&opts.simplify, "simplify", 0, "also report the triangle count after decimating to this fraction")
}

type loadResult struct {
	mesh *metadata.Mesh
	err  error
}

func main() {
	flag.Parse()
	if err := run(os.Stdout, flag.Args()); err != nil {
		core.LogError(err.Error())
		os.Exit(1)
	}
}

func run(w io.Writer, names []string) error {
	cfg := config.Default()
	if opts.configFile != "" {
		c, err := config.Load(opts.configFile)
		if err != nil {
			return err
		}
		cfg = c
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.strict {
		cfg.Loader.MissingAttributes = wavefront.MissingStrict.String()
	}
	if opts.watchDir != "" {
		cfg.Assets.Dir = opts.watchDir
		cfg.Assets.Watch = true
	}
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		return err
	}
	if opts.simplify < 0 || opts.simplify > 1 {
		return fmt.Errorf("-simplify must be in [0, 1], got %g", opts.simplify)
	}

	core.EventInitialize()
	defer core.EventShutdown()

	sm, err := systems.NewSystemManager(cfg)
	if err != nil {
		return err
	}
	defer sm.Shutdown()

	if len(names) == 0 {
		for _, a := range sm.AssetManager.Assets() {
			names = append(names, a.Path)
		}
	}
	if len(names) == 0 && !cfg.Assets.Watch {
		return fmt.Errorf("no models given and none found in '%s'", cfg.Assets.Dir)
	}

	results := loadAll(sm.MeshLoaderSystem, names)
	fmt.Fprintln(w, renderTable(results))
	loaded, failed := sm.MeshLoaderSystem.Metrics().Counts()
	fmt.Fprintf(w, "%d loaded, %d failed, %.3f ms average\n", loaded, failed, sm.MeshLoaderSystem.Metrics().AverageMS())

	if !cfg.Assets.Watch {
		if failed > 0 {
			return fmt.Errorf("%d of %d models failed to load", failed, loaded+failed)
		}
		return nil
	}
	return watch(w, sm.MeshLoaderSystem)
}

// loadAll loads every model on the job system and returns the results in
// the order the models were named.
func loadAll(mls *systems.MeshLoaderSystem, names []string) []loadResult {
	results := make([]loadResult, len(names))
	done := make(chan int, len(names))
	for i, name := range names {
		err := mls.LoadAsync(name, func(m *metadata.Mesh, err error) {
			results[i] = loadResult{m, err}
			done <- i
		})
		if err != nil {
			results[i] = loadResult{&metadata.Mesh{Name: name}, err}
			done <- i
		}
	}
	for range names {
		<-done
	}
	return results
}

func watch(w io.Writer, mls *systems.MeshLoaderSystem) error {
	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	core.LogInfo("Watching for changes, press Ctrl+C to stop.")
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-sigCh:
			return nil
		case <-ticker.C:
			reloaded := mls.ReloadPending()
			if len(reloaded) == 0 {
				continue
			}
			sort.Slice(reloaded, func(i, j int) bool { return reloaded[i].Path < reloaded[j].Path })
			rows := make([]loadResult, len(reloaded))
			for i, m := range reloaded {
				rows[i] = loadResult{mesh: m}
				if m.IsDefault {
					rows[i].err = fmt.Errorf("load failed")
				}
			}
			fmt.Fprintln(w, renderTable(rows))
		}
	}
}

func renderTable(results []loadResult) string {
	failed := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headers := []string{"MODEL", "POINTS", "TRIANGLES", "ELEMENTS", "MIN", "MAX", "CENTER", "GEN", "STATUS"}
	if opts.simplify > 0 {
		headers = append(headers, "SIMPLIFIED")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, r := range results {
		m := r.mesh
		status := "ok"
		if r.err != nil {
			status = failed.Render(r.err.Error())
		}
		g := m.Geometry
		if g == nil {
			row := []string{m.Name, "-", "-", "-", "-", "-", "-", fmt.Sprint(m.Generation), status}
			if opts.simplify > 0 {
				row = append(row, "-")
			}
			t.Row(row...)
			continue
		}
		if m.IsDefault {
			status += " (default geometry)"
		}
		row := []string{m.Name,
			fmt.Sprint(g.PointCount),
			fmt.Sprint(g.TriangleCount),
			fmt.Sprint(g.VertexCount()),
			formatVec3(g.MinExtents),
			formatVec3(g.MaxExtents),
			formatVec3(g.Center),
			fmt.Sprint(m.Generation),
			status,
		}
		if opts.simplify > 0 {
			row = append(row, simplifiedCount(g))
		}
		t.Row(row...)
	}
	return t.String()
}

func simplifiedCount(g *metadata.GeometryConfig) string {
	s, err := systems.GenerateSimplifiedConfig(g, opts.simplify)
	if err != nil {
		return err.Error()
	}
	defer s.Buffer.Release()
	return fmt.Sprint(s.TriangleCount)
}

func formatVec3(v math.Vec3) string {
	return fmt.Sprintf("(%.3g, %.3g, %.3g)", v.X, v.Y, v.Z)
}
