package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata/pkg/watch"
)

var watchGlob string

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch a document for field-level changes",
	Long: `Watch follows a document file and prints one line per changed field
(CREATE, MODIFY or DELETE with the dotted path). Rapid rewrites are
debounced. With --pattern only matching fields are reported. Stop
with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file := args[0]

		opts := []watch.Option{watch.WithLogger(slog.Default())}
		if watchGlob != "" {
			opts = append(opts, watch.WithPattern(watchGlob))
		}

		watcher, err := watch.New(file, opts...)
		if err != nil {
			fatal("Failed to create watcher", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := watcher.Start(ctx); err != nil {
			fatal("Failed to start watcher", err)
		}
		fmt.Printf("Watching %s (Ctrl-C to stop)\n", file)

		// Consume through a lifecycle.Source so the bridge goroutine is
		// tracked like any other managed component.
		source := watch.NewSource(watcher.Events())
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		for {
			select {
			case event, ok := <-source.Events():
				if !ok {
					return
				}
				fmt.Println(event)
			case <-ctx.Done():
				stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := watcher.Stop(stopCtx); err != nil {
					slog.Warn("Watcher did not stop cleanly", "error", err)
				}
				return
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchGlob, "pattern", "", "Glob filter over '/'-joined paths")
	rootCmd.AddCommand(watchCmd)
}
