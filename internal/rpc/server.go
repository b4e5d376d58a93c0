package rpc

import (
	"log/slog"
	"net/http"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

func New(logger *slog.Logger, manager *blogportal.Manager) http.Handler {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("post", NewPostService(manager))
	rpcServer.Register("category", NewCategoryService(manager))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blog-portal", nil))

	return rpcServer
}
