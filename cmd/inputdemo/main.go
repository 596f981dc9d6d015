// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/kataras/golog"
	"golang.org/x/sync/errgroup"

	"gioui.org/inputengine/app"
	"gioui.org/inputengine/app/remote"
	"gioui.org/inputengine/app/terminal"
)

var (
	remoteAddr = flag.String("remote", "", "listen for websocket input on address")
	origin     = flag.String("origin", "", "also accept websocket input from browser pages of origin")
	ppp        = flag.Float64("ppp", 1, "pixels per point")
	fps        = flag.Int("fps", 60, "frames per second while smoothing input")
	logFile    = flag.String("log", "", "write diagnostics to file")
	verbose    = flag.Bool("v", false, "log debug diagnostics")
)

// loggers lists the loggers of the packages in use.
var loggers = []string{"[app]", "[terminal]", "[remote]"}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := flagValidate(); err != nil {
		fmt.Fprintf(os.Stderr, "inputdemo: %v\n", err)
		os.Exit(2)
	}
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "inputdemo: %v\n", err)
		os.Exit(1)
	}
}

func flagValidate() error {
	if *ppp <= 0 {
		return fmt.Errorf("invalid -ppp %v", *ppp)
	}
	if *fps <= 0 {
		return fmt.Errorf("invalid -fps %d", *fps)
	}
	return nil
}

func mainErr() error {
	closeLog, err := setupLogging(*logFile, *verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	inbox := app.NewInbox()
	adapter := terminal.New(screen, inbox, terminal.DefaultCellSize)
	w := app.NewWindow(inbox,
		app.PixelsPerPoint(float32(*ppp)),
		app.PredictedDt(time.Second/time.Duration(*fps)),
	)
	d := newDemo(screen, terminal.DefaultCellSize, cancel)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return adapter.Run(ctx)
	})
	if *remoteAddr != "" {
		var origins []string
		if *origin != "" {
			origins = append(origins, *origin)
		}
		srv := &http.Server{Addr: *remoteAddr, Handler: remote.NewHandler(inbox, origins...)}
		g.Go(func() error {
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("remote: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return srv.Shutdown(context.Background())
		})
	}
	g.Go(func() error {
		return w.Run(ctx, d.frame)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// setupLogging directs the diagnostics of all loggers to the named
// file, or discards them if name is empty.
func setupLogging(name string, debug bool) (func(), error) {
	var out io.Writer = io.Discard
	closer := func() {}
	if name != "" {
		f, err := os.Create(name)
		if err != nil {
			return nil, err
		}
		out = f
		closer = func() { f.Close() }
	}
	golog.SetOutput(out)
	level := "info"
	if debug {
		level = "debug"
	}
	golog.SetLevel(level)
	// Children copy the level of their parent when created.
	for _, name := range loggers {
		golog.Child(name).SetLevel(level)
	}
	return closer, nil
}
