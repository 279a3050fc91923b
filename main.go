package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cortex/favicons/internal/iconset"
	"github.com/cortex/favicons/internal/logging"
	"github.com/cortex/favicons/internal/web"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	defaults, err := iconset.DefaultConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	fs := flag.NewFlagSet("favicons", flag.ContinueOnError)
	publicDir := fs.String("public-dir", defaults.PublicDir, "directory for favicon.ico and the Apple touch icons; also configurable via "+iconset.EnvPublicDir)
	iconsDir := fs.String("icons-dir", os.Getenv(iconset.EnvIconsDir), "directory for the cortex-NxN.png icons (default <public-dir>/"+iconset.DefaultIconsSubdir+"); also configurable via "+iconset.EnvIconsDir)
	preview := fs.String("preview", defaults.PreviewPath, "also write a preview sheet of every size to this path; also configurable via "+iconset.EnvPreview)
	listen := fs.String("serve", defaults.ListenAddr, "after generating, serve on-demand icons on this address until interrupted; also configurable via "+iconset.EnvListen)
	devMode := fs.Bool("dev", defaults.DevMode, "enable permissive CORS on the preview server; also configurable via "+iconset.EnvDevMode)
	debug := fs.Bool("debug", defaults.Debug, "enable debug logging; also configurable via "+iconset.EnvDebug)
	stdioLog := fs.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+iconset.EnvStdioLog)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	cfg := iconset.Config{
		PublicDir:   *publicDir,
		IconsDir:    *iconsDir,
		PreviewPath: *preview,
		ListenAddr:  *listen,
		DevMode:     *devMode,
		Debug:       *debug,
		StdioLog:    *stdioLog,
	}
	if cfg.IconsDir == "" {
		cfg.IconsDir = filepath.Join(cfg.PublicDir, iconset.DefaultIconsSubdir)
	}

	logger := logging.New(os.Stdout, cfg.Debug)
	logger.Debugf("main", "public dir %s, icons dir %s", cfg.PublicDir, cfg.IconsDir)

	targets := iconset.DefaultTargets(cfg)
	gen := iconset.NewGenerator(logger)
	report, err := gen.Run(targets)
	if err != nil {
		logger.Errorf("main", "generation failed: %v", err)
		return 1
	}

	if cfg.PreviewPath != "" {
		sheet, err := gen.Sheet(targets)
		if err != nil {
			logger.Errorf("main", "preview sheet failed: %v", err)
			return 1
		}
		if _, err := gen.Writer.WriteImage(cfg.PreviewPath, sheet); err != nil {
			logger.Errorf("main", "%v", err)
			return 1
		}
		logger.Infof("main", "preview sheet written to %s", cfg.PreviewPath)
	}

	logger.Infof("main", "all Cortex favicon files generated successfully: %s", report.Summary())

	if cfg.ListenAddr == "" {
		return 0
	}
	return serve(cfg, targets, logger)
}

func serve(cfg iconset.Config, targets []iconset.Target, logger logging.Logger) int {
	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: cfg.ListenAddr, DevMode: cfg.DevMode})
	server.Logger = logger
	server.Handler = web.NewDefaultMux(web.APIV1Config{Targets: targets, MaxSize: server.MaxSize, Logger: logger})
	if err := server.Start(processCtx); err != nil {
		logger.Errorf("main", "server start error: %v", err)
		return 1
	}
	logger.Infof("main", "preview server listening on http://%s/api/v1/preview.png", server.Addr)

	<-processCtx.Done()
	if err := server.Stop(); err != nil {
		logger.Errorf("main", "server stop error: %v", err)
	}
	return 0
}
