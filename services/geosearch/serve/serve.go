package serve

import (
	"fmt"

	"github.com/xichen2020/geosearch/index"
	httpserver "github.com/xichen2020/geosearch/server/http"
	"github.com/xichen2020/geosearch/server/http/handlers"
	"github.com/xichen2020/geosearch/segment"

	"go.uber.org/zap"
)

// Serve starts serving HTTP traffic.
func Serve(
	addr string,
	handlerOpts *handlers.Options,
	serverOpts *httpserver.Options,
	catalog *segment.Catalog,
	deleted index.DeletedDocs,
	logger *zap.Logger,
	doneCh chan struct{},
) error {
	service := handlers.NewService(catalog, deleted, handlerOpts)
	httpServer := httpserver.NewServer(addr, service, serverOpts)
	if err := httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("could not start http server at %s: %v", addr, err)
	}
	defer httpServer.Close()
	logger.Info("http server: listening", zap.String("address", addr))

	// Wait for exit signal.
	<-doneCh

	return nil
}
