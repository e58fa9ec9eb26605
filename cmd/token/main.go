package main

import (
	"flag"

	"github.com/storelink/storelink/internal/config"
	"github.com/storelink/storelink/internal/logger"
	"github.com/storelink/storelink/internal/service"
)

// 为指定店铺签发店主令牌，用于本地联调和运维
func main() {
	storeID := flag.Uint("store", 0, "店铺ID")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if *storeID == 0 {
		stdLog.Fatalf("usage: token -store <store_id>")
	}

	auth := service.NewAuthService(cfg)
	if !auth.Enabled() {
		stdLog.Fatalf("jwt.secret is not configured, token validation is disabled")
	}

	token, expiresAt, err := auth.GenerateToken(*storeID)
	if err != nil {
		stdLog.Fatalf("Failed to generate token: %v", err)
	}
	stdLog.Printf("store_id: %d", *storeID)
	stdLog.Printf("expires_at: %s", expiresAt.Format("2006-01-02 15:04:05"))
	stdLog.Printf("token: %s", token)
}
