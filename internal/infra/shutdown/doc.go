// Package shutdown runs cleanup hooks when minidb stops.
//
// A stop is either an interrupt signal, observed through the context from
// NotifyContext, or the interactive session ending normally. Both paths
// call Handler.Shutdown, which runs the hooks once in reverse order of
// registration under a timeout.
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(metricsServer.Shutdown)
//	ctx, stop := shutdown.NotifyContext(context.Background())
//	defer stop()
//	err := repl.Run(ctx)
//	h.Shutdown()
package shutdown
