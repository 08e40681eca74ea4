package main

import (
	"context"
	"fmt"

	"WeTube.com/cmd/api/router"
	"WeTube.com/cmd/api/router/authfunc"
	catalogdb "WeTube.com/cmd/catalog/dal/db"
	interactiondb "WeTube.com/cmd/interaction/dal/db"
	"WeTube.com/cmd/interaction/infras/redis"
	relationdb "WeTube.com/cmd/relation/dal/db"
	"WeTube.com/config"
	"WeTube.com/pkg/errno"
	"WeTube.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	catalogdb.Init()
	interactiondb.Init()
	relationdb.Init()
	redis.Init()
	if err := oss.InitMinio(); err != nil {
		hlog.Warnf("minio init failed, uploads disabled: %v", err)
	}
	authfunc.Init()
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(4*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("internal error: %v", err),
			})
		})))

	router.Register(r)
	r.Spin()
}
