// Package authfunc adapts the identity collaborator: it resolves a current
// user id (or anonymous) from the request's JWT and never authenticates
// credentials itself.
package authfunc

import (
	"context"
	"time"

	relationdb "WeTube.com/cmd/relation/dal/db"
	"WeTube.com/config"
	"WeTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"
)

const identityKey = "user_id"

var AuthMiddleware *jwt.HertzJWTMiddleware

func Init() {
	var err error
	AuthMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "wetube",
		Key:         []byte(config.ConfigInfo.Server.JwtSecret),
		Timeout:     24 * time.Hour,
		MaxRefresh:  24 * time.Hour,
		IdentityKey: identityKey,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return claims[identityKey]
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"code":    errno.AuthorizationCode,
				"message": message,
			})
		},
	})
	if err != nil {
		panic(err)
	}
}

func toUserId(v interface{}) int64 {
	switch id := v.(type) {
	case int64:
		return id
	case float64:
		return int64(id)
	default:
		return 0
	}
}

// CurrentUserId returns the authenticated user id, 0 for anonymous.
func CurrentUserId(ctx context.Context, c *app.RequestContext) int64 {
	if v, ok := c.Get(identityKey); ok {
		return toUserId(v)
	}
	claims := jwt.ExtractClaims(ctx, c)
	return toUserId(claims[identityKey])
}

// OptionalIdentity resolves the identity when a valid token is present and
// lets anonymous requests straight through.
func OptionalIdentity() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if claims, err := AuthMiddleware.GetClaimsFromJWT(ctx, c); err == nil {
			if v, ok := claims[identityKey]; ok {
				c.Set(identityKey, v)
			}
		}
		c.Next(ctx)
	}
}

// AdminRequired gates the moderation routes on the acting user's admin flag.
func AdminRequired() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userId := CurrentUserId(ctx, c)
		user, err := relationdb.GetUserInfo(ctx, userId)
		if err != nil || !user.IsAdmin {
			c.JSON(consts.StatusForbidden, map[string]interface{}{
				"code":    errno.AuthorizationCode,
				"message": "admin privilege required",
			})
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
